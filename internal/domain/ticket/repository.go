package ticket

import "context"

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
}

// TicketFilter narrows List results. A nil CreatorID returns every ticket;
// results come back in creation order.
type TicketFilter struct {
	CreatorID *uint
}

type ReportRepository interface {
	Save(ctx context.Context, report *Report) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Report, error)
	CountByTicketID(ctx context.Context, ticketID uint) (int64, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
