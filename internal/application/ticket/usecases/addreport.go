package usecases

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// FileUpload carries an incoming attachment stream and its metadata.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type AddReportCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Comment  string
	File     *FileUpload
}

type AddReportUseCase struct {
	ticketRepo  ticket.TicketRepository
	reportRepo  ticket.ReportRepository
	objectStore ObjectStore
	logger      logger.Interface
}

func NewAddReportUseCase(
	ticketRepo ticket.TicketRepository,
	reportRepo ticket.ReportRepository,
	objectStore ObjectStore,
	logger logger.Interface,
) *AddReportUseCase {
	return &AddReportUseCase{
		ticketRepo:  ticketRepo,
		reportRepo:  reportRepo,
		objectStore: objectStore,
		logger:      logger,
	}
}

// Execute appends a report to a ticket. When a file is attached it is
// uploaded before the report row is written, so a failed upload leaves
// no partial report behind.
func (uc *AddReportUseCase) Execute(ctx context.Context, cmd AddReportCommand) (*dto.ReportDTO, error) {
	uc.logger.Infow("executing add report use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	// Validate before touching storage so a bad comment never uploads a blob.
	if _, err := ticket.NewReport(cmd.TicketID, cmd.Actor.UserID, cmd.Comment, nil); err != nil {
		uc.logger.Warnw("invalid add report command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		uc.logger.Warnw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	var attachmentKey *string
	if cmd.File != nil {
		key := attachmentKeyFor(cmd.TicketID, cmd.File.Filename)
		if err := uc.objectStore.Put(ctx, key, cmd.File.Reader, cmd.File.Size, cmd.File.ContentType); err != nil {
			uc.logger.Errorw("failed to upload attachment", "ticket_id", cmd.TicketID, "key", key, "error", err)
			return nil, err
		}
		attachmentKey = &key
	}

	report, err := ticket.NewReport(cmd.TicketID, cmd.Actor.UserID, cmd.Comment, attachmentKey)
	if err != nil {
		return nil, err
	}

	if err := uc.reportRepo.Save(ctx, report); err != nil {
		uc.logger.Errorw("failed to save report", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("report added", "ticket_id", cmd.TicketID, "report_id", report.ID())

	return dto.ToReportDTO(report, uc.objectStore.URLFor), nil
}

// attachmentKeyFor builds the storage key for an uploaded file. The
// filename is reduced to its base name so path segments in user input
// cannot escape the ticket prefix.
func attachmentKeyFor(ticketID uint, filename string) string {
	return fmt.Sprintf("tickets/%d/%s", ticketID, filepath.Base(filename))
}
