package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"

	"github.com/desklab/porter/pkg/service/llm"
)

// LLM holds configuration for the completion service
type LLM struct {
	provider       string
	model          string
	temperature    float64
	maxTokens      int64
	timeout        time.Duration
	openaiAPIKey   string
	geminiProject  string
	geminiLocation string
}

// Flags returns CLI flags for LLM configuration
func (l *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "Completion provider (openai or gemini)",
			Value:       "openai",
			Sources:     cli.EnvVars("PORTER_LLM_PROVIDER"),
			Destination: &l.provider,
		},
		&cli.StringFlag{
			Name:        "llm-model",
			Usage:       "Model identifier for the completion provider",
			Value:       "gpt-4o-mini",
			Sources:     cli.EnvVars("PORTER_LLM_MODEL"),
			Destination: &l.model,
		},
		&cli.FloatFlag{
			Name:        "llm-temperature",
			Usage:       "Sampling temperature for completions",
			Value:       0.7,
			Sources:     cli.EnvVars("PORTER_LLM_TEMPERATURE"),
			Destination: &l.temperature,
		},
		&cli.Int64Flag{
			Name:        "llm-max-tokens",
			Usage:       "Maximum tokens per completion",
			Value:       500,
			Sources:     cli.EnvVars("PORTER_LLM_MAX_TOKENS"),
			Destination: &l.maxTokens,
		},
		&cli.DurationFlag{
			Name:        "llm-timeout",
			Usage:       "Timeout per completion call",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("PORTER_LLM_TIMEOUT"),
			Destination: &l.timeout,
		},
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key (required for the openai provider)",
			Sources:     cli.EnvVars("PORTER_OPENAI_API_KEY", "OPENAI_API_KEY"),
			Destination: &l.openaiAPIKey,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for Gemini API",
			Sources:     cli.EnvVars("PORTER_GEMINI_PROJECT"),
			Destination: &l.geminiProject,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for Gemini API",
			Value:       "us-central1",
			Sources:     cli.EnvVars("PORTER_GEMINI_LOCATION"),
			Destination: &l.geminiLocation,
		},
	}
}

// LogAttrs returns log attributes for the LLM configuration
func (l *LLM) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("provider", l.provider),
		slog.String("model", l.model),
		slog.Float64("temperature", l.temperature),
		slog.Int64("max_tokens", l.maxTokens),
		slog.Duration("timeout", l.timeout),
	}
}

// Configure creates the completion service from the configured flags. Returns
// nil when the selected provider has no credentials; the chat pipeline then
// runs on the fallback path only.
func (l *LLM) Configure(ctx context.Context) (llm.Service, error) {
	client, err := l.newClient(ctx)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}

	return llm.New(client, llm.WithTimeout(l.timeout))
}

func (l *LLM) newClient(ctx context.Context) (gollem.LLMClient, error) {
	switch l.provider {
	case "openai":
		if l.openaiAPIKey == "" {
			return nil, nil
		}
		client, err := openai.New(ctx, l.openaiAPIKey,
			openai.WithModel(l.model),
			openai.WithTemperature(float32(l.temperature)),
			openai.WithMaxTokens(int(l.maxTokens)),
		)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create OpenAI client")
		}
		return client, nil

	case "gemini":
		if l.geminiProject == "" {
			return nil, nil
		}
		client, err := gemini.New(ctx, l.geminiProject, l.geminiLocation,
			gemini.WithModel(l.model),
			gemini.WithTemperature(float32(l.temperature)),
			gemini.WithMaxTokens(int32(l.maxTokens)),
		)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Gemini client")
		}
		return client, nil

	default:
		return nil, goerr.New("invalid LLM provider", goerr.V("provider", l.provider))
	}
}
