package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/gameinput/pkg/form"
	"gopkg.in/yaml.v3"
)

// RunForm loads a questionnaire, asks every question and prints the answers
// as YAML on the output stream. Prompts are written to the error stream.
func RunForm(ctx context.Context, opts Options, path string) error {
	opts = opts.withDefaults()
	f, err := form.LoadFile(path)
	if err != nil {
		return err
	}

	s, err := newSession(opts, opts.Err)
	if err != nil {
		return err
	}
	defer s.close()

	answers, err := form.Run(ctx, s.prompter, f)
	if err != nil {
		return handleExecutionError(err)
	}

	enc := yaml.NewEncoder(opts.Out)
	enc.SetIndent(2)
	if err := enc.Encode(answers); err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	return enc.Close()
}
