package usecase

import (
	"github.com/desklab/porter/pkg/domain/interfaces"
	"github.com/desklab/porter/pkg/service/fallback"
	"github.com/desklab/porter/pkg/service/knowledge"
	"github.com/desklab/porter/pkg/service/llm"
)

// UseCases aggregates the application use cases
type UseCases struct {
	repo       interfaces.Repository
	completion llm.Service
	classifier *fallback.Classifier
	responder  *fallback.Responder

	Chat     *ChatUseCase
	Ticket   *TicketUseCase
	Feedback *FeedbackUseCase
}

// Option is a functional option for UseCases configuration
type Option func(*UseCases)

// WithCompletion wires the remote completion service. Without it every chat
// request takes the fallback path.
func WithCompletion(svc llm.Service) Option {
	return func(uc *UseCases) {
		uc.completion = svc
	}
}

// WithResponseRules overrides the built-in canned-answer rules
func WithResponseRules(rules []fallback.Rule) Option {
	return func(uc *UseCases) {
		uc.responder = fallback.NewResponder(fallback.WithRules(rules))
	}
}

// WithRefusalPhrases overrides the built-in refusal phrase set
func WithRefusalPhrases(phrases []string) Option {
	return func(uc *UseCases) {
		uc.classifier = fallback.NewClassifier(fallback.WithPhrases(phrases))
	}
}

// New creates the use case set backed by the given repository and knowledge store
func New(repo interfaces.Repository, store *knowledge.Store, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:       repo,
		classifier: fallback.NewClassifier(),
		responder:  fallback.NewResponder(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Chat = NewChatUseCase(repo, store, uc.completion, uc.classifier, uc.responder)
	uc.Ticket = NewTicketUseCase(repo)
	uc.Feedback = NewFeedbackUseCase(repo)

	return uc
}
