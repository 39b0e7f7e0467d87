package eval

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/desklab/porter/pkg/utils/logging"
	"github.com/desklab/porter/pkg/utils/safe"
)

// Grade classifies an accuracy score
type Grade string

const (
	GradeExcellent Grade = "EXCELLENT"
	GradeGood      Grade = "GOOD"
	GradeFair      Grade = "FAIR"
	GradePoor      Grade = "POOR"
)

// GradeFor maps a score in [0, 1] to its accuracy grade
func GradeFor(score float64) Grade {
	switch {
	case score >= 0.9:
		return GradeExcellent
	case score >= 0.8:
		return GradeGood
	case score >= 0.65:
		return GradeFair
	default:
		return GradePoor
	}
}

// QuestionResult is the outcome of one question round trip
type QuestionResult struct {
	Question      string  `json:"question"`
	Score         float64 `json:"score"`
	TicketCreated bool    `json:"ticket_created"`
	Response      string  `json:"response"`
	Error         string  `json:"error,omitempty"`
}

// CategoryResult aggregates the scores of one test case
type CategoryResult struct {
	Category     string           `json:"category"`
	AverageScore float64          `json:"average_score"`
	Grade        Grade            `json:"grade"`
	Results      []QuestionResult `json:"results"`
}

// Report is the outcome of a full harness run
type Report struct {
	OverallAccuracy float64          `json:"overall_accuracy"`
	Grade           Grade            `json:"grade"`
	Categories      []CategoryResult `json:"categories"`
}

// Runner drives a running chat server through its HTTP boundary and scores
// the answers. It lives outside the pipeline it measures on purpose: scoring
// happens against the same surface real clients use.
type Runner struct {
	baseURL string
	contact string
	client  *http.Client
}

// RunnerOption is a functional option for Runner configuration
type RunnerOption func(*Runner)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(client *http.Client) RunnerOption {
	return func(r *Runner) {
		r.client = client
	}
}

// WithContact sets the user contact sent with each question
func WithContact(contact string) RunnerOption {
	return func(r *Runner) {
		r.contact = contact
	}
}

// NewRunner creates a Runner targeting the server at baseURL
func NewRunner(baseURL string, opts ...RunnerOption) (*Runner, error) {
	if baseURL == "" {
		return nil, goerr.New("base URL is required")
	}

	r := &Runner{
		baseURL: baseURL,
		contact: "eval@example.com",
		client:  &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Health checks that the target server is up
func (r *Runner) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/", nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build health request")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return goerr.Wrap(err, "server is not reachable", goerr.V("base_url", r.baseURL))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return goerr.New("server health check failed", goerr.V("status", resp.StatusCode))
	}
	return nil
}

// Run evaluates every test case and returns the aggregated report
func (r *Runner) Run(ctx context.Context, cases []TestCase) (*Report, error) {
	if len(cases) == 0 {
		return nil, goerr.New("no test cases to run")
	}

	logger := logging.From(ctx)
	report := &Report{}

	totalAccuracy := 0.0
	for _, tc := range cases {
		result := r.runCase(ctx, tc)
		logger.Info("category evaluated",
			"category", result.Category,
			"score", result.AverageScore,
			"grade", result.Grade,
		)
		report.Categories = append(report.Categories, result)
		totalAccuracy += result.AverageScore
	}

	report.OverallAccuracy = totalAccuracy / float64(len(report.Categories))
	report.Grade = GradeFor(report.OverallAccuracy)

	return report, nil
}

func (r *Runner) runCase(ctx context.Context, tc TestCase) CategoryResult {
	result := CategoryResult{Category: tc.Category}

	total := 0.0
	for _, question := range tc.Questions() {
		qr := r.ask(ctx, question, tc)
		result.Results = append(result.Results, qr)
		total += qr.Score
	}

	result.AverageScore = total / float64(len(result.Results))
	result.Grade = GradeFor(result.AverageScore)
	return result
}

func (r *Runner) ask(ctx context.Context, question string, tc TestCase) QuestionResult {
	result := QuestionResult{Question: question}

	body, err := json.Marshal(map[string]string{
		"message":      question,
		"user_contact": r.contact,
	})
	if err != nil {
		result.Error = err.Error()
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		result.Error = err.Error()
		return result
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		result.Error = resp.Status
		return result
	}

	var chatResp struct {
		Response      string `json:"response"`
		TicketCreated bool   `json:"ticket_created"`
		MessageID     string `json:"message_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		result.Error = err.Error()
		return result
	}

	result.Response = chatResp.Response
	result.TicketCreated = chatResp.TicketCreated

	if tc.ShouldEscalate {
		result.Score = ScoreEscalation(chatResp.TicketCreated)
	} else {
		result.Score = Score(chatResp.Response, tc.Expectation)
	}

	return result
}
