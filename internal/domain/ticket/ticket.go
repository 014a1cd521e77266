package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.TicketStatus
	creatorID   uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(title, description string, creatorID uint) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		status:      vo.DefaultStatus,
		creatorID:   creatorID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence without re-running
// creation-time invariants.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.TicketStatus,
	creatorID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		creatorID:   creatorID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to newStatus. Updates are last-writer-wins;
// any valid status can be assigned directly.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description cannot be empty")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}

	t.description = description
	t.updatedAt = biztime.NowUTC()
	return nil
}
