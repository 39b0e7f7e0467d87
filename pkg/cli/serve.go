package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/desklab/porter/pkg/cli/config"
	httpctrl "github.com/desklab/porter/pkg/controller/http"
	"github.com/desklab/porter/pkg/usecase"
	"github.com/desklab/porter/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var llmCfg config.LLM
	var knowledgeCfg config.Knowledge
	var rulesCfg config.Rules

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("PORTER_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, knowledgeCfg.Flags()...)
	flags = append(flags, rulesCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			// Completion service is optional: without credentials every chat
			// request takes the fallback path (and always escalates).
			completionSvc, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure completion service")
			}
			if completionSvc != nil {
				logging.Default().LogAttrs(ctx, slog.LevelInfo, "Completion service enabled", llmCfg.LogAttrs()...)
			} else {
				logging.Default().Warn("Completion service not configured, serving fallback responses only")
			}

			knowledgeStore := knowledgeCfg.Configure()

			rules, phrases, err := rulesCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load response rules")
			}

			ucOpts := []usecase.Option{}
			if completionSvc != nil {
				ucOpts = append(ucOpts, usecase.WithCompletion(completionSvc))
			}
			if len(rules) > 0 {
				ucOpts = append(ucOpts, usecase.WithResponseRules(rules))
				logging.Default().Info("Custom fallback rules loaded", "count", len(rules))
			}
			if len(phrases) > 0 {
				ucOpts = append(ucOpts, usecase.WithRefusalPhrases(phrases))
				logging.Default().Info("Custom refusal phrases loaded", "count", len(phrases))
			}

			uc := usecase.New(repo, knowledgeStore, ucOpts...)

			httpHandler, err := httpctrl.New(uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
