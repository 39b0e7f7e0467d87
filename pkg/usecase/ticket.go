package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/desklab/porter/pkg/domain/interfaces"
	"github.com/desklab/porter/pkg/domain/model"
)

// TicketUseCase handles direct ticket administration
type TicketUseCase struct {
	repo interfaces.Repository
}

// NewTicketUseCase creates a new TicketUseCase
func NewTicketUseCase(repo interfaces.Repository) *TicketUseCase {
	return &TicketUseCase{repo: repo}
}

// CreateTicket opens a ticket for the given question
func (uc *TicketUseCase) CreateTicket(ctx context.Context, question, contact string) (*model.Ticket, error) {
	if question == "" {
		return nil, goerr.Wrap(ErrEmptyQuestion, "ticket without question")
	}

	created, err := uc.repo.Ticket().Create(ctx, &model.Ticket{
		UserQuestion: question,
		UserContact:  contact,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create ticket", goerr.V(QuestionKey, question))
	}

	return created, nil
}

// ListTickets returns all tickets, newest first
func (uc *TicketUseCase) ListTickets(ctx context.Context) ([]*model.Ticket, error) {
	tickets, err := uc.repo.Ticket().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tickets")
	}
	return tickets, nil
}
