package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/desklab/porter/pkg/domain/model"
	"github.com/desklab/porter/pkg/repository/memory"
	"github.com/desklab/porter/pkg/usecase"
)

func TestHandleFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("unhelpful feedback creates a traceable ticket", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewFeedbackUseCase(repo)

		created, err := uc.HandleFeedback(ctx, model.Feedback{
			MessageID:        "abc-123",
			IsHelpful:        false,
			Contact:          testContact,
			OriginalQuestion: "How do I export my data?",
		})
		gt.NoError(t, err).Required()
		gt.Bool(t, created).True()

		tickets, err := repo.Ticket().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, tickets).Length(1)
		gt.String(t, tickets[0].UserQuestion).Contains("How do I export my data?")
		gt.String(t, tickets[0].UserQuestion).Contains("abc-123")
		gt.Value(t, tickets[0].UserContact).Equal(testContact)
	})

	t.Run("helpful feedback has no side effect", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewFeedbackUseCase(repo)

		created, err := uc.HandleFeedback(ctx, model.Feedback{
			MessageID:        "abc-123",
			IsHelpful:        true,
			OriginalQuestion: "How do I export my data?",
		})
		gt.NoError(t, err).Required()
		gt.Bool(t, created).False()

		tickets, err := repo.Ticket().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, tickets).Length(0)
	})

	t.Run("ticket write failure propagates", func(t *testing.T) {
		uc := usecase.NewFeedbackUseCase(&failingRepository{})

		_, err := uc.HandleFeedback(ctx, model.Feedback{
			MessageID:        "abc-123",
			IsHelpful:        false,
			OriginalQuestion: "X",
		})
		gt.Value(t, err).NotNil()
	})
}
