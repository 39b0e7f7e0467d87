package types

import "fmt"

// TicketStatus represents the status of a support ticket
type TicketStatus string

const (
	// TicketStatusOpen is the status assigned at creation. No transition logic
	// exists; tickets are an append-only escalation record.
	TicketStatusOpen TicketStatus = "open"
)

// AllTicketStatuses returns all valid ticket statuses
func AllTicketStatuses() []TicketStatus {
	return []TicketStatus{
		TicketStatusOpen,
	}
}

// IsValid checks if the ticket status is valid
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as TicketStatusOpen.
func (s TicketStatus) Normalize() TicketStatus {
	if s == "" {
		return TicketStatusOpen
	}
	return s
}

// String returns the string representation of the ticket status
func (s TicketStatus) String() string {
	return string(s)
}

// ParseTicketStatus parses a string into a TicketStatus
func ParseTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
