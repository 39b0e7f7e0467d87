package interfaces

import (
	"context"

	"github.com/desklab/porter/pkg/domain/model"
)

// TicketRepository defines the append-only persistence contract for tickets
type TicketRepository interface {
	// Create appends a ticket and returns the stored copy with its assigned ID,
	// creation time and normalized status.
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)

	// List returns all tickets ordered by creation time descending
	List(ctx context.Context) ([]*model.Ticket, error)
}
