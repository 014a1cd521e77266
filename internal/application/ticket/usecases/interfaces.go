package usecases

import (
	"context"
	"io"

	"helpdesk/internal/application/ticket/dto"
)

// ObjectStore is the slice of blob storage the ticket use cases need.
// Satisfied by storage.ObjectStorage.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	URLFor(key string) string
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type AddReportExecutor interface {
	Execute(ctx context.Context, cmd AddReportCommand) (*dto.ReportDTO, error)
}

type ListReportsExecutor interface {
	Execute(ctx context.Context, query ListReportsQuery) ([]*dto.ReportDTO, error)
}
