package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/desklab/porter/pkg/domain/model"
	"github.com/desklab/porter/pkg/utils/errutil"
)

type ticketCreateRequest struct {
	UserQuestion string `json:"user_question"`
	UserContact  string `json:"user_contact,omitempty"`
}

type ticketResponse struct {
	ID           int64     `json:"id"`
	UserQuestion string    `json:"user_question"`
	UserContact  string    `json:"user_contact,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status"`
}

func newTicketResponse(t *model.Ticket) ticketResponse {
	return ticketResponse{
		ID:           t.ID,
		UserQuestion: t.UserQuestion,
		UserContact:  t.UserContact,
		Timestamp:    t.CreatedAt,
		Status:       t.Status.String(),
	}
}

func (s *Server) handleCreateTicket(w http.ResponseWriter, r *http.Request) {
	var req ticketCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid ticket request body"),
			"invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserQuestion == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("ticket request without question"),
			"user_question is required", http.StatusBadRequest)
		return
	}

	created, err := s.uc.Ticket.CreateTicket(r.Context(), req.UserQuestion, req.UserContact)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, "failed to create ticket", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, newTicketResponse(created))
}

func (s *Server) handleListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.uc.Ticket.ListTickets(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, "failed to list tickets", http.StatusInternalServerError)
		return
	}

	resp := make([]ticketResponse, len(tickets))
	for i, t := range tickets {
		resp[i] = newTicketResponse(t)
	}

	writeJSON(w, r, http.StatusOK, resp)
}
