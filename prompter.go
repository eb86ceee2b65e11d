package gameinput

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/gameinput/internal/logging"
	"github.com/aretw0/gameinput/pkg/console"
	"github.com/aretw0/gameinput/pkg/domain"
)

// Prompter owns the console and runs prompt loops against it.
// It keeps no state between prompts and is not safe for concurrent use.
type Prompter struct {
	console *console.Console
	logger  *slog.Logger
	hooks   domain.PromptHooks

	in          io.Reader
	out         io.Writer
	consoleOpts []console.Option
}

// Option defines a functional option for configuring the Prompter.
type Option func(*Prompter)

// WithConsole uses an existing console. Input, output and console options are ignored.
func WithConsole(c *console.Console) Option {
	return func(p *Prompter) {
		p.console = c
	}
}

// WithInput sets the source lines are read from (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(p *Prompter) {
		p.in = r
	}
}

// WithOutput sets where messages and diagnostics are written (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(p *Prompter) {
		p.out = w
	}
}

// WithRenderer renders instruction bodies, e.g. as markdown.
func WithRenderer(renderer console.ContentRenderer) Option {
	return func(p *Prompter) {
		p.consoleOpts = append(p.consoleOpts, console.WithRenderer(renderer))
	}
}

// WithEcho writes every consumed line back to the output.
func WithEcho(echo bool) Option {
	return func(p *Prompter) {
		p.consoleOpts = append(p.consoleOpts, console.WithEcho(echo))
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prompter) {
		p.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.PromptHooks) Option {
	return func(p *Prompter) {
		p.hooks = hooks
	}
}

// New creates a Prompter. Without options it reads stdin and writes stdout.
func New(opts ...Option) *Prompter {
	p := &Prompter{}
	for _, opt := range opts {
		opt(p)
	}
	if p.console == nil {
		p.console = console.New(p.in, p.out, p.consoleOpts...)
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	return p
}

// Console returns the underlying console.
func (p *Prompter) Console() *console.Console {
	return p.console
}

// rejection is a discarded attempt: why, and the line shown to the player.
type rejection struct {
	reason domain.RejectReason
	diag   string
}

func reject(reason domain.RejectReason, diag string) *rejection {
	return &rejection{reason: reason, diag: diag}
}

// loop shows msg and feeds each line to try until try accepts it (returns nil).
// It returns an error only when no further attempt is possible.
func (p *Prompter) loop(ctx context.Context, kind domain.PromptKind, msg string, try func(line string) *rejection) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.console.Println(msg)
		line, err := p.console.ReadLine(ctx)

		ev := &domain.PromptEvent{
			Timestamp: time.Now(),
			Kind:      kind,
			Message:   msg,
			Input:     line,
			Attempt:   attempt,
		}

		if err != nil {
			if !console.IsTransient(err) {
				p.logger.Error("prompt aborted", "kind", kind, "attempt", attempt, "error", err)
				return err
			}
			p.fire(ctx, p.hooks.OnAttempt, ev)
			diag := MsgInputUnreadable
			if errors.Is(err, console.ErrInputTooLarge) {
				diag = MsgInputTooLong
			}
			p.rejected(ctx, ev, reject(domain.ReasonInvalid, diag))
			continue
		}

		p.fire(ctx, p.hooks.OnAttempt, ev)
		if rej := try(line); rej != nil {
			p.rejected(ctx, ev, rej)
			continue
		}

		p.logger.Debug("input accepted", "kind", kind, "input", line, "attempt", attempt)
		p.fire(ctx, p.hooks.OnAccept, ev)
		return nil
	}
}

func (p *Prompter) rejected(ctx context.Context, ev *domain.PromptEvent, rej *rejection) {
	ev.Reason = rej.reason
	p.console.Println(rej.diag)
	p.logger.Debug("input rejected", "kind", ev.Kind, "reason", rej.reason, "input", ev.Input, "attempt", ev.Attempt)
	p.fire(ctx, p.hooks.OnReject, ev)
}

func (p *Prompter) fire(ctx context.Context, hook func(context.Context, *domain.PromptEvent), ev *domain.PromptEvent) {
	if hook != nil {
		hook(ctx, ev)
	}
}
