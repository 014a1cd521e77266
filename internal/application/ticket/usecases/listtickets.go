package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor authorization.Actor
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns every ticket for privileged actors and only the actor's
// own tickets otherwise.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	filter := ticket.TicketFilter{}
	if !query.Actor.Role.IsPrivileged() {
		creatorID := query.Actor.UserID
		filter.CreatorID = &creatorID
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return dto.ToTicketDTOs(tickets), nil
}
