package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/desklab/porter/pkg/domain/model"
	"github.com/desklab/porter/pkg/usecase"
	"github.com/desklab/porter/pkg/utils/errutil"
)

type chatRequest struct {
	Message     string `json:"message"`
	UserContact string `json:"user_contact,omitempty"`
}

type chatResponse struct {
	Response      string `json:"response"`
	TicketCreated bool   `json:"ticket_created"`
	MessageID     string `json:"message_id"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid chat request body"),
			"invalid request body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("chat request without message"),
			"message is required", http.StatusBadRequest)
		return
	}

	exchange, err := s.uc.Chat.HandleChat(r.Context(), req.Message, req.UserContact)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyQuestion) {
			errutil.HandleHTTP(r.Context(), w, err, "message is required", http.StatusBadRequest)
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, "failed to process chat request", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, chatResponse{
		Response:      exchange.Response,
		TicketCreated: exchange.TicketCreated,
		MessageID:     exchange.MessageID.String(),
	})
}

type feedbackRequest struct {
	MessageID        string `json:"message_id"`
	IsHelpful        bool   `json:"is_helpful"`
	UserContact      string `json:"user_contact,omitempty"`
	OriginalQuestion string `json:"original_question"`
}

type feedbackResponse struct {
	Success       bool `json:"success"`
	TicketCreated bool `json:"ticket_created"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid feedback request body"),
			"invalid request body", http.StatusBadRequest)
		return
	}

	ticketCreated, err := s.uc.Feedback.HandleFeedback(r.Context(), model.Feedback{
		MessageID:        model.MessageID(req.MessageID),
		IsHelpful:        req.IsHelpful,
		Contact:          req.UserContact,
		OriginalQuestion: req.OriginalQuestion,
	})
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, "failed to process feedback", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, feedbackResponse{
		Success:       true,
		TicketCreated: ticketCreated,
	})
}
