package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/desklab/porter/pkg/usecase"
	"github.com/desklab/porter/pkg/utils/errutil"
	"github.com/desklab/porter/pkg/utils/logging"
	"github.com/desklab/porter/pkg/utils/safe"
)

// Server is the HTTP controller for the support chat API
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

// New creates the HTTP server with all routes registered
func New(uc *usecase.UseCases) (*Server, error) {
	if uc == nil {
		return nil, goerr.New("use cases are required")
	}

	r := chi.NewRouter()
	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Post("/chat", s.handleChat)
	r.Post("/feedback", s.handleFeedback)
	r.Post("/ticket", s.handleCreateTicket)
	r.Get("/tickets", s.handleListTickets)
	r.Get("/", s.handleRoot)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"),
			"internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Message string `json:"message"`
	}
	writeJSON(w, r, http.StatusOK, response{Message: "Porter support API is running"})
}
