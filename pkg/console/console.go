package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/gameinput/pkg/domain"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContentRenderer turns a block of text into its displayed form (e.g. markdown).
type ContentRenderer func(string) (string, error)

// Console reads normalized lines and writes terminated lines.
// It is not safe for concurrent use.
type Console struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	interactive bool
	echo        bool
	upper       cases.Caser
}

// Option configures a Console.
type Option func(*Console)

// WithRenderer configures the block renderer used by Render.
func WithRenderer(renderer ContentRenderer) Option {
	return func(c *Console) {
		c.Renderer = renderer
	}
}

// WithEcho writes every consumed line back to the writer.
// Useful when input is piped and the transcript should still read naturally.
func WithEcho(echo bool) Option {
	return func(c *Console) {
		c.echo = echo
	}
}

// New creates a Console. A nil reader means os.Stdin, a nil writer os.Stdout.
func New(r io.Reader, w io.Writer, opts ...Option) *Console {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	c := &Console{
		Reader:      bufio.NewReader(r),
		Writer:      w,
		interactive: isTerminal(r),
		upper:       cases.Upper(language.Und),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Interactive reports whether the console reads from a terminal.
func (c *Console) Interactive() bool {
	return c.interactive
}

// ReadLine reads exactly one line and returns it normalized.
//
// A final line without terminator is still returned. End of input with nothing
// read yields an error wrapping domain.ErrInputClosed. Sanitizing failures are
// reported with ErrInputTooLarge or ErrInvalidUTF8; the line is consumed either way.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := c.Reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read line: %w", err)
		}
		if text == "" {
			return "", fmt.Errorf("read line: %w", domain.ErrInputClosed)
		}
	}

	if c.echo {
		fmt.Fprintln(c.Writer, strings.TrimRight(text, "\r\n"))
	}

	clean, err := SanitizeInput(strings.TrimSpace(text))
	if err != nil {
		return "", err
	}
	return c.Normalize(clean), nil
}

// Normalize trims surrounding whitespace and uppercases s.
func (c *Console) Normalize(s string) string {
	return c.upper.String(strings.TrimSpace(s))
}

// Println writes s followed by a line terminator.
func (c *Console) Println(s string) {
	fmt.Fprintln(c.Writer, s)
}

// Printf writes a formatted line.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.Writer, format+"\n", args...)
}

// Render writes a block of lines. With a renderer configured the block is joined
// and rendered once; otherwise (or if rendering fails) each line is written as is.
func (c *Console) Render(lines []string) {
	if c.Renderer != nil {
		if out, err := c.Renderer(strings.Join(lines, "\n")); err == nil {
			fmt.Fprintln(c.Writer, strings.TrimRight(out, "\n"))
			return
		}
	}
	for _, l := range lines {
		fmt.Fprintln(c.Writer, l)
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
