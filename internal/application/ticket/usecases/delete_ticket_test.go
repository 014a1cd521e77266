package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	apperrors "helpdesk/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute_AdminDeletesWithReports(t *testing.T) {
	reportsDeleted := false
	ticketDeleted := false

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTicket(t, ticketID, 42, vo.StatusOpen), nil
		},
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			assert.True(t, reportsDeleted, "reports must go before the ticket")
			ticketDeleted = true
			return nil
		},
	}
	reportsCounted := false
	mockReports := &mockReportRepository{
		CountByTicketIDFunc: func(ctx context.Context, ticketID uint) (int64, error) {
			reportsCounted = true
			return 2, nil
		},
		DeleteByTicketIDFunc: func(ctx context.Context, ticketID uint) error {
			assert.True(t, reportsCounted, "count happens before the reports go away")
			reportsDeleted = true
			return nil
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, mockReports, &mockTransactor{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTicketCommand{Actor: adminActor(1), TicketID: 9})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Deleted)
	assert.Equal(t, uint(9), result.TicketID)
	assert.True(t, ticketDeleted)
}

func TestDeleteTicketUseCase_Execute_NonAdminForbidden(t *testing.T) {
	tests := []struct {
		name string
		cmd  DeleteTicketCommand
	}{
		{name: "member", cmd: DeleteTicketCommand{Actor: memberActor(42), TicketID: 9}},
		{name: "staff", cmd: DeleteTicketCommand{Actor: staffActor(5), TicketID: 9}},
		{name: "member owning the ticket", cmd: DeleteTicketCommand{Actor: memberActor(42), TicketID: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleteCalled := false
			mockRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return reconstructTicket(t, ticketID, 42, vo.StatusOpen), nil
				},
				DeleteFunc: func(ctx context.Context, ticketID uint) error {
					deleteCalled = true
					return nil
				},
			}

			useCase := NewDeleteTicketUseCase(mockRepo, &mockReportRepository{}, &mockTransactor{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsForbiddenError(err))
			assert.False(t, deleteCalled)
		})
	}
}

func TestDeleteTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, &mockReportRepository{}, &mockTransactor{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), DeleteTicketCommand{Actor: adminActor(1), TicketID: 404})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

// A failing report cleanup rolls the whole delete back.
func TestDeleteTicketUseCase_Execute_ReportCleanupFailureAborts(t *testing.T) {
	ticketDeleted := false
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTicket(t, ticketID, 42, vo.StatusOpen), nil
		},
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			ticketDeleted = true
			return nil
		},
	}
	mockReports := &mockReportRepository{
		DeleteByTicketIDFunc: func(ctx context.Context, ticketID uint) error {
			return errors.New("lock wait timeout")
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, mockReports, &mockTransactor{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTicketCommand{Actor: adminActor(1), TicketID: 9})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, ticketDeleted)
}
