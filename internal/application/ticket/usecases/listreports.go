package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type ListReportsQuery struct {
	TicketID uint
}

type ListReportsUseCase struct {
	ticketRepo  ticket.TicketRepository
	reportRepo  ticket.ReportRepository
	objectStore ObjectStore
	logger      logger.Interface
}

func NewListReportsUseCase(
	ticketRepo ticket.TicketRepository,
	reportRepo ticket.ReportRepository,
	objectStore ObjectStore,
	logger logger.Interface,
) *ListReportsUseCase {
	return &ListReportsUseCase{
		ticketRepo:  ticketRepo,
		reportRepo:  reportRepo,
		objectStore: objectStore,
		logger:      logger,
	}
}

// Execute returns a ticket's reports in creation order.
func (uc *ListReportsUseCase) Execute(ctx context.Context, query ListReportsQuery) ([]*dto.ReportDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		uc.logger.Warnw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	reports, err := uc.reportRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list reports", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	return dto.ToReportDTOs(reports, uc.objectStore.URLFor), nil
}
