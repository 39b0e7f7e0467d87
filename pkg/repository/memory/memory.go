package memory

import (
	"github.com/desklab/porter/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is an in-memory repository for development and tests
type Memory struct {
	ticket *ticketRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		ticket: newTicketRepository(),
	}
}

func (m *Memory) Ticket() interfaces.TicketRepository {
	return m.ticket
}

func (m *Memory) Close() error {
	return nil
}
