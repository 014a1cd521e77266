package usecases

import (
	"context"
	"io"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc  func(ctx context.Context, ticketID uint) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

type mockReportRepository struct {
	SaveFunc             func(ctx context.Context, r *ticket.Report) error
	GetByTicketIDFunc    func(ctx context.Context, ticketID uint) ([]*ticket.Report, error)
	CountByTicketIDFunc  func(ctx context.Context, ticketID uint) (int64, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockReportRepository) Save(ctx context.Context, r *ticket.Report) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReportRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Report, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockReportRepository) CountByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	if m.CountByTicketIDFunc != nil {
		return m.CountByTicketIDFunc(ctx, ticketID)
	}
	return 0, nil
}

func (m *mockReportRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockObjectStore struct {
	PutFunc    func(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	URLForFunc func(key string) string

	PutCalls []string
}

func (m *mockObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	m.PutCalls = append(m.PutCalls, key)
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, r, size, contentType)
	}
	return nil
}

func (m *mockObjectStore) URLFor(key string) string {
	if m.URLForFunc != nil {
		return m.URLForFunc(key)
	}
	return "https://objects.example.com/" + key
}

type mockTransactor struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                 {}
func (m *mockLogger) Info(msg string, args ...any)                  {}
func (m *mockLogger) Warn(msg string, args ...any)                  {}
func (m *mockLogger) Error(msg string, args ...any)                 {}
func (m *mockLogger) With(args ...any) logger.Interface             { return m }
func (m *mockLogger) Named(name string) logger.Interface            { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
