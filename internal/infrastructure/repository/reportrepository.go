package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type ReportRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewReportRepository(gdb *gorm.DB) *ReportRepository {
	return &ReportRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ReportRepository) Save(ctx context.Context, report *ticket.Report) error {
	model := r.mapper.ReportToModel(report)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return report.SetID(model.ID)
}

// GetByTicketID returns a ticket's reports in creation order.
func (r *ReportRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Report, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ReportModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]*ticket.Report, 0, len(rows))
	for i := range rows {
		report, err := r.mapper.ReportToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (r *ReportRepository) CountByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.ReportModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// DeleteByTicketID removes every report of a ticket. Called inside the
// ticket-delete transaction so tickets and their reports go together.
func (r *ReportRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.ReportModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete reports: %w", err)
	}
	return nil
}
