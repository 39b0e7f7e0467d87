package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/m-mizutani/goerr/v2"

	"github.com/desklab/porter/pkg/domain/interfaces"
	"github.com/desklab/porter/pkg/domain/model"
	"github.com/desklab/porter/pkg/service/fallback"
	"github.com/desklab/porter/pkg/service/knowledge"
	"github.com/desklab/porter/pkg/service/llm"
	"github.com/desklab/porter/pkg/utils/logging"
)

//go:embed prompt/chat_system.md
var chatSystemPromptTmpl string

var chatSystemPrompt = template.Must(template.New("chat_system").Parse(chatSystemPromptTmpl))

const (
	// ticketCreatedSuffix is appended when the assistant declined and a ticket
	// was opened for the question
	ticketCreatedSuffix = "\n\nI've created a support ticket for your question. Our team will get back to you soon."

	// fallbackNoteSuffix is appended when the completion service was
	// unavailable and a canned answer was served instead
	fallbackNoteSuffix = "\n\nNote: This is a fallback response generated while the AI assistant is unavailable. A support ticket has been created for your question."
)

// ChatUseCase runs the answer pipeline: retrieve relevant knowledge, ask the
// completion service, classify the answer, fall back to canned responses when
// the remote call fails, and escalate to a ticket whenever the user would
// otherwise be left without a real answer.
type ChatUseCase struct {
	repo       interfaces.Repository
	knowledge  *knowledge.Store
	completion llm.Service
	classifier *fallback.Classifier
	responder  *fallback.Responder
}

// NewChatUseCase creates a new ChatUseCase. completion may be nil; without a
// completion service every question takes the fallback path.
func NewChatUseCase(repo interfaces.Repository, store *knowledge.Store, completion llm.Service, classifier *fallback.Classifier, responder *fallback.Responder) *ChatUseCase {
	return &ChatUseCase{
		repo:       repo,
		knowledge:  store,
		completion: completion,
		classifier: classifier,
		responder:  responder,
	}
}

// HandleChat answers a single question. At most one ticket is created per
// call: unconditionally when the completion service fails, conditionally when
// it answers with a refusal. A successful, confident answer never creates a
// ticket. A ticket write failure is the one error that propagates, since it
// would break the escalation promise made to the user.
func (uc *ChatUseCase) HandleChat(ctx context.Context, question, contact string) (*model.ChatExchange, error) {
	if question == "" {
		return nil, goerr.Wrap(ErrEmptyQuestion, "chat request without question")
	}

	messageID := model.NewMessageID()
	logger := logging.From(ctx)

	relevant := uc.knowledge.Search(ctx, question)

	systemPrompt, err := uc.buildSystemPrompt(relevant)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build system prompt", goerr.V(MessageIDKey, messageID))
	}
	userMessage := fmt.Sprintf("Customer question: %s", question)

	answer, completionErr := uc.complete(ctx, systemPrompt, userMessage)
	if completionErr != nil {
		// Remote answer path is unavailable: serve a canned answer and always
		// escalate, regardless of how the canned answer reads.
		logger.Warn("completion failed, serving fallback response",
			"error", completionErr.Error(),
			MessageIDKey, messageID,
		)

		answer = uc.responder.Respond(question, relevant)
		if err := uc.createTicket(ctx, question, contact); err != nil {
			return nil, goerr.Wrap(err, "failed to create ticket for fallback response", goerr.V(MessageIDKey, messageID))
		}

		return &model.ChatExchange{
			Question:      question,
			Contact:       contact,
			MessageID:     messageID,
			Response:      answer + fallbackNoteSuffix,
			TicketCreated: true,
		}, nil
	}

	if uc.classifier.IsRefusal(answer) {
		if err := uc.createTicket(ctx, question, contact); err != nil {
			return nil, goerr.Wrap(err, "failed to create ticket for refused answer", goerr.V(MessageIDKey, messageID))
		}

		return &model.ChatExchange{
			Question:      question,
			Contact:       contact,
			MessageID:     messageID,
			Response:      answer + ticketCreatedSuffix,
			TicketCreated: true,
		}, nil
	}

	return &model.ChatExchange{
		Question:      question,
		Contact:       contact,
		MessageID:     messageID,
		Response:      answer,
		TicketCreated: false,
	}, nil
}

func (uc *ChatUseCase) buildSystemPrompt(relevantContent string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		RelevantContent string
	}{
		RelevantContent: relevantContent,
	}
	if err := chatSystemPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to render chat system prompt")
	}
	return buf.String(), nil
}

func (uc *ChatUseCase) complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if uc.completion == nil {
		return "", goerr.New("completion service is not configured")
	}
	return uc.completion.Complete(ctx, systemPrompt, userMessage)
}

func (uc *ChatUseCase) createTicket(ctx context.Context, question, contact string) error {
	_, err := uc.repo.Ticket().Create(ctx, &model.Ticket{
		UserQuestion: question,
		UserContact:  contact,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to append ticket", goerr.V(QuestionKey, question))
	}
	return nil
}
