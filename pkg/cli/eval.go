package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/desklab/porter/pkg/eval"
	"github.com/desklab/porter/pkg/utils/logging"
)

func cmdEval() *cli.Command {
	var baseURL string
	var contact string
	var output string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Base URL of the running server to evaluate",
			Value:       "http://localhost:8080",
			Sources:     cli.EnvVars("PORTER_EVAL_BASE_URL"),
			Destination: &baseURL,
		},
		&cli.StringFlag{
			Name:        "contact",
			Usage:       "User contact sent with evaluation questions",
			Value:       "eval@example.com",
			Sources:     cli.EnvVars("PORTER_EVAL_CONTACT"),
			Destination: &contact,
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Write the detailed JSON report to this file (optional)",
			Sources:     cli.EnvVars("PORTER_EVAL_OUTPUT"),
			Destination: &output,
		},
	}

	return &cli.Command{
		Name:  "eval",
		Usage: "Run the response accuracy evaluation against a running server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			runner, err := eval.NewRunner(baseURL, eval.WithContact(contact))
			if err != nil {
				return goerr.Wrap(err, "failed to create evaluation runner")
			}

			if err := runner.Health(ctx); err != nil {
				return goerr.Wrap(err, "server is not available, start it with 'porter serve' first")
			}

			report, err := runner.Run(ctx, eval.DefaultCases())
			if err != nil {
				return goerr.Wrap(err, "evaluation run failed")
			}

			for _, category := range report.Categories {
				logger.Info("category result",
					"category", category.Category,
					"score", category.AverageScore,
					"grade", category.Grade,
				)
			}
			logger.Info("overall accuracy",
				"score", report.OverallAccuracy,
				"grade", report.Grade,
			)

			if output != "" {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return goerr.Wrap(err, "failed to marshal evaluation report")
				}
				if err := os.WriteFile(output, data, 0644); err != nil {
					return goerr.Wrap(err, "failed to write evaluation report", goerr.V("path", output))
				}
				logger.Info("detailed report written", "path", output)
			}

			return nil
		},
	}
}
