package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	httpctrl "github.com/desklab/porter/pkg/controller/http"
	"github.com/desklab/porter/pkg/repository/memory"
	"github.com/desklab/porter/pkg/service/knowledge"
	"github.com/desklab/porter/pkg/usecase"
)

const testCorpus = `Password Reset:
To reset your password, click the forgot password link on the login page. You will receive an email with reset instructions.

Billing:
We accept credit cards and PayPal. Billing happens monthly on your signup date.`

func newTestStore(t *testing.T) *knowledge.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knowledge.txt")
	if err := os.WriteFile(path, []byte(testCorpus), 0o600); err != nil {
		t.Fatalf("failed to write knowledge file: %v", err)
	}
	return knowledge.New(path)
}

// cannedCompletion is a stand-in completion service returning a fixed answer
type cannedCompletion struct {
	answer string
}

func (c *cannedCompletion) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return c.answer, nil
}

func newTestServer(t *testing.T, opts ...usecase.Option) (*httpctrl.Server, *memory.Repository) {
	t.Helper()
	repo := memory.New()
	uc := usecase.New(repo, newTestStore(t), opts...)
	server, err := httpctrl.New(uc)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return server, repo
}

func postJSON(t *testing.T, server *httpctrl.Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func TestHandleRoot(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &resp)
	if resp.Message == "" {
		t.Error("expected a liveness message, got empty string")
	}
}

func TestHandleChat(t *testing.T) {
	t.Run("confident answer creates no ticket", func(t *testing.T) {
		answer := "Click the forgot password link and follow the email instructions."
		server, repo := newTestServer(t, usecase.WithCompletion(&cannedCompletion{answer: answer}))

		rec := postJSON(t, server, "/chat", map[string]string{
			"message":      "How do I reset my password?",
			"user_contact": "user@example.com",
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}

		var resp struct {
			Response      string `json:"response"`
			TicketCreated bool   `json:"ticket_created"`
			MessageID     string `json:"message_id"`
		}
		decodeBody(t, rec, &resp)

		if resp.Response != answer {
			t.Errorf("expected answer to pass through unchanged, got: %s", resp.Response)
		}
		if resp.TicketCreated {
			t.Error("expected no ticket for a confident answer")
		}
		if resp.MessageID == "" {
			t.Error("expected a message ID, got empty string")
		}

		tickets, err := repo.Ticket().List(context.Background())
		if err != nil {
			t.Fatalf("failed to list tickets: %v", err)
		}
		if len(tickets) != 0 {
			t.Errorf("expected 0 tickets, got %d", len(tickets))
		}
	})

	t.Run("refusal answer escalates to a ticket", func(t *testing.T) {
		answer := "I don't have enough information to answer that question."
		server, repo := newTestServer(t, usecase.WithCompletion(&cannedCompletion{answer: answer}))

		rec := postJSON(t, server, "/chat", map[string]string{
			"message": "What is your office dress code?",
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}

		var resp struct {
			Response      string `json:"response"`
			TicketCreated bool   `json:"ticket_created"`
		}
		decodeBody(t, rec, &resp)

		if !resp.TicketCreated {
			t.Error("expected a ticket for a refusal answer")
		}
		if !strings.HasPrefix(resp.Response, answer) {
			t.Errorf("expected refusal answer to be preserved, got: %s", resp.Response)
		}
		if !strings.Contains(resp.Response, "support ticket") {
			t.Errorf("expected escalation notice in response, got: %s", resp.Response)
		}

		tickets, err := repo.Ticket().List(context.Background())
		if err != nil {
			t.Fatalf("failed to list tickets: %v", err)
		}
		if len(tickets) != 1 {
			t.Fatalf("expected 1 ticket, got %d", len(tickets))
		}
		if tickets[0].UserQuestion != "What is your office dress code?" {
			t.Errorf("unexpected ticket question: %s", tickets[0].UserQuestion)
		}
	})

	t.Run("missing completion service serves fallback and escalates", func(t *testing.T) {
		server, repo := newTestServer(t)

		rec := postJSON(t, server, "/chat", map[string]string{
			"message": "How do I reset my password?",
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}

		var resp struct {
			Response      string `json:"response"`
			TicketCreated bool   `json:"ticket_created"`
		}
		decodeBody(t, rec, &resp)

		if !resp.TicketCreated {
			t.Error("expected a ticket on the fallback path")
		}
		if !strings.Contains(strings.ToLower(resp.Response), "password") {
			t.Errorf("expected a canned password answer, got: %s", resp.Response)
		}
		if !strings.Contains(resp.Response, "fallback response") {
			t.Errorf("expected fallback notice in response, got: %s", resp.Response)
		}

		tickets, err := repo.Ticket().List(context.Background())
		if err != nil {
			t.Fatalf("failed to list tickets: %v", err)
		}
		if len(tickets) != 1 {
			t.Errorf("expected 1 ticket, got %d", len(tickets))
		}
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := postJSON(t, server, "/chat", map[string]string{"message": ""})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		server, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

func TestHandleFeedback(t *testing.T) {
	t.Run("unhelpful feedback creates a traceable ticket", func(t *testing.T) {
		server, repo := newTestServer(t)

		rec := postJSON(t, server, "/feedback", map[string]any{
			"message_id":        "abc-123",
			"is_helpful":        false,
			"user_contact":      "user@example.com",
			"original_question": "How do I cancel my subscription?",
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}

		var resp struct {
			Success       bool `json:"success"`
			TicketCreated bool `json:"ticket_created"`
		}
		decodeBody(t, rec, &resp)

		if !resp.Success {
			t.Error("expected success to be true")
		}
		if !resp.TicketCreated {
			t.Error("expected a ticket for unhelpful feedback")
		}

		tickets, err := repo.Ticket().List(context.Background())
		if err != nil {
			t.Fatalf("failed to list tickets: %v", err)
		}
		if len(tickets) != 1 {
			t.Fatalf("expected 1 ticket, got %d", len(tickets))
		}
		if !strings.Contains(tickets[0].UserQuestion, "abc-123") {
			t.Errorf("expected ticket to reference the message ID, got: %s", tickets[0].UserQuestion)
		}
		if !strings.Contains(tickets[0].UserQuestion, "How do I cancel my subscription?") {
			t.Errorf("expected ticket to reference the original question, got: %s", tickets[0].UserQuestion)
		}
		if tickets[0].UserContact != "user@example.com" {
			t.Errorf("unexpected ticket contact: %s", tickets[0].UserContact)
		}
	})

	t.Run("helpful feedback creates no ticket", func(t *testing.T) {
		server, repo := newTestServer(t)

		rec := postJSON(t, server, "/feedback", map[string]any{
			"message_id":        "abc-123",
			"is_helpful":        true,
			"original_question": "How do I cancel my subscription?",
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var resp struct {
			Success       bool `json:"success"`
			TicketCreated bool `json:"ticket_created"`
		}
		decodeBody(t, rec, &resp)

		if !resp.Success {
			t.Error("expected success to be true")
		}
		if resp.TicketCreated {
			t.Error("expected no ticket for helpful feedback")
		}

		tickets, err := repo.Ticket().List(context.Background())
		if err != nil {
			t.Fatalf("failed to list tickets: %v", err)
		}
		if len(tickets) != 0 {
			t.Errorf("expected 0 tickets, got %d", len(tickets))
		}
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		server, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

func TestHandleTickets(t *testing.T) {
	t.Run("create and list round trip", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := postJSON(t, server, "/ticket", map[string]string{
			"user_question": "Please delete my account",
			"user_contact":  "user@example.com",
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}

		var created struct {
			ID           int64  `json:"id"`
			UserQuestion string `json:"user_question"`
			UserContact  string `json:"user_contact"`
			Status       string `json:"status"`
		}
		decodeBody(t, rec, &created)

		if created.ID != 1 {
			t.Errorf("expected ID 1, got %d", created.ID)
		}
		if created.UserQuestion != "Please delete my account" {
			t.Errorf("unexpected question: %s", created.UserQuestion)
		}
		if created.Status != "open" {
			t.Errorf("expected status open, got %s", created.Status)
		}

		listRec := httptest.NewRecorder()
		server.ServeHTTP(listRec, httptest.NewRequest(http.MethodGet, "/tickets", nil))

		if listRec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, listRec.Code)
		}

		var listed []struct {
			ID int64 `json:"id"`
		}
		decodeBody(t, listRec, &listed)
		if len(listed) != 1 {
			t.Fatalf("expected 1 ticket, got %d", len(listed))
		}
		if listed[0].ID != created.ID {
			t.Errorf("expected listed ID %d, got %d", created.ID, listed[0].ID)
		}
	})

	t.Run("empty question is rejected", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := postJSON(t, server, "/ticket", map[string]string{"user_question": ""})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("listing an empty store returns an empty array", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tickets", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var listed []struct {
			ID int64 `json:"id"`
		}
		decodeBody(t, rec, &listed)
		if len(listed) != 0 {
			t.Errorf("expected 0 tickets, got %d", len(listed))
		}
	})
}
