package eval_test

import (
	"math"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/desklab/porter/pkg/eval"
)

func near(t *testing.T, got, want float64) {
	t.Helper()
	gt.Bool(t, math.Abs(got-want) < 1e-9).True()
}

func TestScoreKeywords(t *testing.T) {
	exp := eval.Expectation{
		Keywords: []string{"password", "reset", "email", "link", "forgot"},
	}

	t.Run("sixty percent keyword coverage earns full keyword credit", func(t *testing.T) {
		// 3 of 5 keywords present; phrases and knowledge answer absent
		response := "To reset your password, check your email for instructions."
		// keyword 1.0, phrase 1.0 (none expected), relevance 0.9 (default), completeness 1.0
		near(t, eval.Score(response, exp), 0.30*1.0+0.20*1.0+0.30*0.9+0.20*1.0)
	})

	t.Run("partial coverage earns partial credit", func(t *testing.T) {
		// only "password" matches: 1 / (5 * 0.6) of keyword credit
		response := "Your password settings live in account preferences today."
		near(t, eval.Score(response, exp), 0.30*(1.0/3.0)+0.20*1.0+0.30*0.9+0.20*1.0)
	})

	t.Run("keyword matching is case insensitive", func(t *testing.T) {
		response := "PASSWORD RESET EMAIL sent, check the LINK provided now."
		near(t, eval.Score(response, exp), 0.30*1.0+0.20*1.0+0.30*0.9+0.20*1.0)
	})
}

func TestScorePhrases(t *testing.T) {
	exp := eval.Expectation{
		Phrases: []string{"reset password", "email link"},
	}

	t.Run("half phrase coverage earns full phrase credit", func(t *testing.T) {
		response := "Please reset password using the account page instructions."
		near(t, eval.Score(response, exp), 0.30*1.0+0.20*1.0+0.30*0.9+0.20*1.0)
	})

	t.Run("no phrase match earns no phrase credit", func(t *testing.T) {
		response := strings.Repeat("nothing relevant here at all ", 3)
		near(t, eval.Score(response, exp), 0.30*1.0+0.20*0.0+0.30*0.9+0.20*1.0)
	})
}

func TestScoreRelevance(t *testing.T) {
	t.Run("twenty percent word overlap earns full relevance credit", func(t *testing.T) {
		exp := eval.Expectation{
			KnowledgeAnswer: "alpha beta gamma delta epsilon",
		}
		// one of five knowledge words appears in the response
		response := "the alpha configuration is documented elsewhere in detail"
		near(t, eval.Score(response, exp), 0.30*1.0+0.20*1.0+0.30*1.0+0.20*1.0)
	})

	t.Run("no knowledge answer defaults to lenient relevance", func(t *testing.T) {
		exp := eval.Expectation{}
		response := "a perfectly substantial response with plenty of words"
		near(t, eval.Score(response, exp), 0.30*1.0+0.20*1.0+0.30*0.9+0.20*1.0)
	})
}

func TestScoreCompleteness(t *testing.T) {
	exp := eval.Expectation{}

	t.Run("short responses are penalized", func(t *testing.T) {
		near(t, eval.Score("ok", exp), 0.30*1.0+0.20*1.0+0.30*0.9+0.20*(2.0/30.0))
	})

	t.Run("thirty characters earn full completeness credit", func(t *testing.T) {
		response := strings.Repeat("x", 30)
		near(t, eval.Score(response, exp), 0.30*1.0+0.20*1.0+0.30*0.9+0.20*1.0)
	})
}

func TestScoreEscalation(t *testing.T) {
	t.Run("binary on ticket creation", func(t *testing.T) {
		near(t, eval.ScoreEscalation(true), 1.0)
		near(t, eval.ScoreEscalation(false), 0.0)
	})
}

func TestGradeFor(t *testing.T) {
	gt.Value(t, eval.GradeFor(0.95)).Equal(eval.GradeExcellent)
	gt.Value(t, eval.GradeFor(0.9)).Equal(eval.GradeExcellent)
	gt.Value(t, eval.GradeFor(0.85)).Equal(eval.GradeGood)
	gt.Value(t, eval.GradeFor(0.7)).Equal(eval.GradeFair)
	gt.Value(t, eval.GradeFor(0.5)).Equal(eval.GradePoor)
}
