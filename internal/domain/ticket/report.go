package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

const maxCommentLength = 5000

// Report is an append-only entry attached to a ticket: a required comment
// plus an optional object-storage key referencing an uploaded file. Reports
// are never updated or deleted individually; they only go away when their
// ticket is removed. A zero author ID marks an anonymous report, since the
// backend does not require callers to identify themselves when posting.
type Report struct {
	id            uint
	ticketID      uint
	authorID      uint
	comment       string
	attachmentKey *string
	createdAt     time.Time
}

func NewReport(ticketID, authorID uint, comment string, attachmentKey *string) (*Report, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(comment) == 0 {
		return nil, fmt.Errorf("comment cannot be empty")
	}
	if len(comment) > maxCommentLength {
		return nil, fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}
	if attachmentKey != nil && *attachmentKey == "" {
		return nil, fmt.Errorf("attachment key cannot be empty when set")
	}

	return &Report{
		ticketID:      ticketID,
		authorID:      authorID,
		comment:       comment,
		attachmentKey: attachmentKey,
		createdAt:     biztime.NowUTC(),
	}, nil
}

func ReconstructReport(
	id uint,
	ticketID uint,
	authorID uint,
	comment string,
	attachmentKey *string,
	createdAt time.Time,
) (*Report, error) {
	if id == 0 {
		return nil, fmt.Errorf("report ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Report{
		id:            id,
		ticketID:      ticketID,
		authorID:      authorID,
		comment:       comment,
		attachmentKey: attachmentKey,
		createdAt:     createdAt,
	}, nil
}

func (r *Report) ID() uint {
	return r.id
}

func (r *Report) TicketID() uint {
	return r.ticketID
}

func (r *Report) AuthorID() uint {
	return r.authorID
}

func (r *Report) Comment() string {
	return r.comment
}

func (r *Report) AttachmentKey() *string {
	return r.attachmentKey
}

func (r *Report) HasAttachment() bool {
	return r.attachmentKey != nil && *r.attachmentKey != ""
}

func (r *Report) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Report) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("report ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("report ID cannot be zero")
	}
	r.id = id
	return nil
}
