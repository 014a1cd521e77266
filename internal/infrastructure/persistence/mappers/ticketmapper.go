package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ReportToModel(r *ticket.Report) *models.ReportModel
	ReportToDomain(model *models.ReportModel) (*ticket.Report, error)
}

type ticketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapperImpl{}
}

func (m *ticketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		CreatorID:   t.CreatorID(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *ticketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in ticket row (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		status,
		model.CreatorID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *ticketMapperImpl) ReportToModel(r *ticket.Report) *models.ReportModel {
	return &models.ReportModel{
		ID:            r.ID(),
		TicketID:      r.TicketID(),
		AuthorID:      r.AuthorID(),
		Comment:       r.Comment(),
		AttachmentKey: r.AttachmentKey(),
		CreatedAt:     r.CreatedAt().UnixMilli(),
	}
}

func (m *ticketMapperImpl) ReportToDomain(model *models.ReportModel) (*ticket.Report, error) {
	return ticket.ReconstructReport(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Comment,
		model.AttachmentKey,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return biztime.ToUTC(time.UnixMilli(millis))
}
