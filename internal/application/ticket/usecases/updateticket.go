package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	Actor       authorization.Actor
	TicketID    uint
	Status      *string
	Description *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if !authorization.CanUpdateTicket(cmd.Actor, existing.CreatorID()) {
		uc.logger.Warnw("user not authorized to update ticket", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)
		return nil, errors.NewForbiddenError("only the creator or staff can update this ticket")
	}

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := existing.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Description != nil {
		if err := existing.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", existing.ID(), "status", existing.Status().String())

	return dto.ToTicketDTO(existing), nil
}
