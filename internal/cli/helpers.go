package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"

	"github.com/aretw0/gameinput"
	"github.com/aretw0/gameinput/internal/logging"
	"github.com/aretw0/gameinput/internal/presentation/tui"
	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/aretw0/gameinput/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// session bundles a configured Prompter with the logger and metrics behind it.
type session struct {
	prompter *gameinput.Prompter
	logger   *slog.Logger
	registry *prometheus.Registry
}

// newSession builds a Prompter that writes prompts to promptOut.
func newSession(opts Options, promptOut io.Writer) (*session, error) {
	logger := createLogger(opts)
	s := &session{logger: logger}

	hooks := createDebugHooks(logger)
	if opts.Metrics {
		s.registry = prometheus.NewRegistry()
		m, err := observability.NewMetrics(s.registry)
		if err != nil {
			return nil, err
		}
		hooks = m.Hooks(hooks)
	}

	popts := []gameinput.Option{
		gameinput.WithInput(opts.In),
		gameinput.WithOutput(promptOut),
		gameinput.WithLogger(logger),
		gameinput.WithHooks(hooks),
		gameinput.WithEcho(opts.Echo),
	}
	if opts.Markdown {
		popts = append(popts, gameinput.WithRenderer(tui.NewRenderer(80)))
	}
	s.prompter = gameinput.New(popts...)

	if !s.prompter.Console().Interactive() {
		logger.Debug("input is not a terminal", "echo", opts.Echo)
	}
	return s, nil
}

// close logs the gathered metric totals, if metrics are enabled.
func (s *session) close() {
	if s.registry == nil {
		return
	}
	totals, err := observability.Totals(s.registry)
	if err != nil {
		s.logger.Warn("failed to gather metrics", "error", err)
		return
	}
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.logger.Info("metric", "name", name, "value", totals[name])
	}
}

// createLogger configures the application logger on the error stream.
// Metrics are reported at info level, so enabling them raises the level.
func createLogger(opts Options) *slog.Logger {
	switch {
	case opts.Debug:
		return logging.NewWithWriter(opts.Err, slog.LevelDebug)
	case opts.Metrics:
		return logging.NewWithWriter(opts.Err, slog.LevelInfo)
	default:
		return logging.NewNop()
	}
}

func createDebugHooks(logger *slog.Logger) domain.PromptHooks {
	return domain.PromptHooks{
		OnAttempt: func(ctx context.Context, e *domain.PromptEvent) {
			logger.Debug("Attempt", "kind", e.Kind, "attempt", e.Attempt)
		},
		OnReject: func(ctx context.Context, e *domain.PromptEvent) {
			logger.Debug("Rejected", "kind", e.Kind, "reason", e.Reason)
		},
		OnAccept: func(ctx context.Context, e *domain.PromptEvent) {
			logger.Debug("Accepted", "kind", e.Kind, "attempt", e.Attempt)
		},
	}
}

// handleExecutionError treats a closed input stream as a normal exit.
func handleExecutionError(err error) error {
	if err == nil || errors.Is(err, domain.ErrInputClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
