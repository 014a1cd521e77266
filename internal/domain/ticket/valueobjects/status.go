package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusClosed     TicketStatus = "closed"
)

// DefaultStatus is the status assigned to newly created tickets.
const DefaultStatus = StatusOpen

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusClosed:     true,
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %q", s)
	}
	return status, nil
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// Values returns all recognized statuses, used by the web layer to render
// the status selector.
func Values() []TicketStatus {
	return []TicketStatus{StatusOpen, StatusInProgress, StatusClosed}
}
