package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute fetches a single ticket by ID. Any authenticated actor may read
// any ticket here; ownership only gates listing and mutation.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	return dto.ToTicketDTO(t), nil
}
