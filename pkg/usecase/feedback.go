package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/desklab/porter/pkg/domain/interfaces"
	"github.com/desklab/porter/pkg/domain/model"
)

// FeedbackUseCase translates negative feedback into escalation tickets
type FeedbackUseCase struct {
	repo interfaces.Repository
}

// NewFeedbackUseCase creates a new FeedbackUseCase
func NewFeedbackUseCase(repo interfaces.Repository) *FeedbackUseCase {
	return &FeedbackUseCase{repo: repo}
}

// HandleFeedback records a user's verdict on an earlier answer. Helpful
// feedback has no side effect. Unhelpful feedback opens a ticket whose
// question embeds the original question and message ID so a human can trace
// the failed exchange. Returns whether a ticket was created.
func (uc *FeedbackUseCase) HandleFeedback(ctx context.Context, feedback model.Feedback) (bool, error) {
	if feedback.IsHelpful {
		return false, nil
	}

	question := fmt.Sprintf("User marked response as unhelpful for question: '%s' (Message ID: %s)",
		feedback.OriginalQuestion, feedback.MessageID)

	_, err := uc.repo.Ticket().Create(ctx, &model.Ticket{
		UserQuestion: question,
		UserContact:  feedback.Contact,
	})
	if err != nil {
		return false, goerr.Wrap(err, "failed to create ticket for unhelpful feedback",
			goerr.V(MessageIDKey, feedback.MessageID))
	}

	return true, nil
}
