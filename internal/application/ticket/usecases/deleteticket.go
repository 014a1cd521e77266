package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    authorization.Actor
	TicketID uint
}

type DeleteTicketResult struct {
	TicketID uint `json:"ticket_id"`
	Deleted  bool `json:"deleted"`
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	reportRepo ticket.ReportRepository
	transactor Transactor
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	reportRepo ticket.ReportRepository,
	transactor Transactor,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		reportRepo: reportRepo,
		transactor: transactor,
		logger:     logger,
	}
}

// Execute removes a ticket and all of its reports in one transaction.
// Only admins may delete.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	if !authorization.CanDeleteTicket(cmd.Actor) {
		uc.logger.Warnw("user not authorized to delete ticket", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)
		return nil, errors.NewForbiddenError("only admins can delete tickets")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		uc.logger.Warnw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	var removedReports int64
	err := uc.transactor.RunInTransaction(ctx, func(txCtx context.Context) error {
		n, err := uc.reportRepo.CountByTicketID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		removedReports = n

		if err := uc.reportRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "reports_deleted", removedReports)

	return &DeleteTicketResult{TicketID: cmd.TicketID, Deleted: true}, nil
}
