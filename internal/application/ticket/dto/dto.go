package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatorID   uint      `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReportDTO struct {
	ID            uint      `json:"id"`
	TicketID      uint      `json:"ticket_id"`
	AuthorID      uint      `json:"author_id"`
	Comment       string    `json:"comment"`
	AttachmentURL *string   `json:"attachment_url"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		CreatorID:   t.CreatorID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, ToTicketDTO(t))
	}
	return dtos
}

// ToReportDTO resolves the stored attachment key to a public URL via urlFor.
func ToReportDTO(r *ticket.Report, urlFor func(key string) string) *ReportDTO {
	if r == nil {
		return nil
	}
	d := &ReportDTO{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		AuthorID:  r.AuthorID(),
		Comment:   r.Comment(),
		CreatedAt: r.CreatedAt(),
	}
	if key := r.AttachmentKey(); key != nil && urlFor != nil {
		url := urlFor(*key)
		d.AttachmentURL = &url
	}
	return d
}

func ToReportDTOs(reports []*ticket.Report, urlFor func(key string) string) []*ReportDTO {
	dtos := make([]*ReportDTO, 0, len(reports))
	for _, r := range reports {
		dtos = append(dtos, ToReportDTO(r, urlFor))
	}
	return dtos
}
