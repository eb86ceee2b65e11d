package gameinput

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/gameinput/internal/logging"
	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/aretw0/gameinput/pkg/scalar"
)

// Exit ends the process when a shortcut hits an unrecoverable error.
// Tests replace it to observe the failure.
var Exit = os.Exit

var std *Prompter

// Default returns the Prompter used by the shortcuts, creating one on
// stdin/stdout on first use.
func Default() *Prompter {
	if std == nil {
		std = New()
	}
	return std
}

// SetDefault replaces the Prompter used by the shortcuts.
func SetDefault(p *Prompter) {
	std = p
}

func fatal(err error) {
	logging.New(slog.LevelError).Error("cannot continue prompting", "error", err)
	Exit(1)
}

func must[T any](v T, err error) T {
	if err != nil {
		fatal(err)
	}
	return v
}

// PrintIntro prints the game header on the default output.
func PrintIntro(title string) {
	Default().Intro(title)
}

// PromptString asks for a line on the default console.
func PromptString(msg string) string {
	return must(Default().String(context.Background(), msg))
}

// PromptBool asks a yes/no question; numeric selects the 1/0 form.
func PromptBool(msg string, numeric bool) bool {
	return must(Default().Bool(context.Background(), msg, domain.ModeFor(numeric)))
}

// PromptNumber asks for a number of type T.
func PromptNumber[T scalar.Number](msg string) T {
	return must(Number[T](context.Background(), Default(), msg))
}

// PromptNumberRange asks for a number of type T between lo and hi inclusive.
func PromptNumberRange[T scalar.Number](msg string, lo, hi T) T {
	return must(NumberRange(context.Background(), Default(), msg, domain.Between(lo, hi)))
}

// PromptMultiString asks for units separated by sep.
func PromptMultiString(msg, sep string, count domain.Count) []string {
	return must(Default().MultiString(context.Background(), msg, sep, count))
}

// PromptMultiNumber asks for numbers separated by sep.
func PromptMultiNumber[T scalar.Number](msg, sep string, count domain.Count, r domain.Range[T]) []T {
	return must(MultiNumber(context.Background(), Default(), msg, sep, count, r))
}

// ShowInstructions runs an instruction block on the default console.
func ShowInstructions(ins domain.Instructions) {
	if err := Default().ShowInstructions(context.Background(), ins); err != nil {
		fatal(err)
	}
}
