package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for request validation
var (
	ErrEmptyQuestion = goerr.New("question is required")
)

// Context keys for error values
const (
	MessageIDKey = "message_id"
	QuestionKey  = "question"
)
