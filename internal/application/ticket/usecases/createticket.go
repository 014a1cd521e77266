package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       authorization.Actor
	Title       string
	Description string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.Actor.UserID)

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.Actor.UserID)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "creator_id", cmd.Actor.UserID)

	return dto.ToTicketDTO(newTicket), nil
}
