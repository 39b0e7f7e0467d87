package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/desklab/porter/pkg/domain/types"
)

// Ticket is an escalated question waiting for a human follow-up. Tickets are
// append-only: once created they are never mutated or deleted.
type Ticket struct {
	ID           int64
	UserQuestion string
	UserContact  string
	CreatedAt    time.Time
	Status       types.TicketStatus
}

// Validate checks the invariants a ticket must hold before persistence
func (t *Ticket) Validate() error {
	if t.UserQuestion == "" {
		return goerr.New("ticket user question is required")
	}
	if !t.Status.Normalize().IsValid() {
		return goerr.New("invalid ticket status", goerr.V("status", t.Status))
	}
	return nil
}
