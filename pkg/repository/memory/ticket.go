package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/desklab/porter/pkg/domain/model"
)

type ticketRepository struct {
	mu      sync.RWMutex
	nextID  int64
	tickets map[int64]*model.Ticket
}

func newTicketRepository() *ticketRepository {
	return &ticketRepository{
		nextID:  1,
		tickets: make(map[int64]*model.Ticket),
	}
}

func copyTicket(t *model.Ticket) *model.Ticket {
	copied := *t
	return &copied
}

func (r *ticketRepository) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	if ticket == nil {
		return nil, goerr.New("ticket is required")
	}

	created := copyTicket(ticket)
	created.Status = created.Status.Normalize()
	if err := created.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid ticket")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created.ID = r.nextID
	r.nextID++
	created.CreatedAt = time.Now().UTC()

	r.tickets[created.ID] = created
	return copyTicket(created), nil
}

func (r *ticketRepository) List(ctx context.Context) ([]*model.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		result = append(result, copyTicket(t))
	}

	// Newest first; IDs break ties for tickets created in the same instant
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}
