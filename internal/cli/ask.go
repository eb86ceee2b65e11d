package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/aretw0/gameinput/pkg/form"
)

// AskOptions describes a single prompt built from command-line flags.
type AskOptions struct {
	Kind     string
	Message  string
	Numeric  bool
	Min      string
	Max      string
	Sep      string
	Count    int
	CountMin int
	CountMax int
	Float    bool
}

var askKinds = map[string]domain.PromptKind{
	"string":       domain.KindString,
	"bool":         domain.KindBool,
	"number":       domain.KindNumber,
	"range":        domain.KindNumberRange,
	"multi":        domain.KindMultiString,
	"multi-number": domain.KindMultiNumber,
}

// AskKinds lists the accepted kind arguments in display order.
var AskKinds = []string{"string", "bool", "number", "range", "multi", "multi-number"}

// question maps the flags onto a form question.
func (a AskOptions) question() (form.Question, error) {
	kind, ok := askKinds[a.Kind]
	if !ok {
		return form.Question{}, fmt.Errorf("unknown kind '%s' (expected one of: %s)", a.Kind, strings.Join(AskKinds, ", "))
	}
	q := form.Question{
		ID:        "answer",
		Kind:      kind,
		Message:   a.Message,
		Separator: a.Sep,
		Mode:      domain.ModeFor(a.Numeric),
		Float:     a.Float,
	}
	switch {
	case a.Count > 0:
		q.Count = domain.Exactly(a.Count)
	case a.CountMax > 0:
		q.Count = domain.CountBetween(a.CountMin, a.CountMax)
	case a.CountMin > 0:
		return form.Question{}, fmt.Errorf("--count-min needs --count-max")
	}
	if a.Min != "" || a.Max != "" {
		if a.Min == "" || a.Max == "" {
			return form.Question{}, fmt.Errorf("--min and --max must be set together")
		}
		q.Range = a.Min + ".." + a.Max
	}
	return q, nil
}

// RunAsk runs one prompt. Prompts go to the error stream so that only the
// accepted value is written to the output stream.
func RunAsk(ctx context.Context, opts Options, a AskOptions) error {
	opts = opts.withDefaults()
	q, err := a.question()
	if err != nil {
		return err
	}
	if err := (&form.Form{Questions: []form.Question{q}}).Validate(); err != nil {
		return err
	}

	s, err := newSession(opts, opts.Err)
	if err != nil {
		return err
	}
	defer s.close()

	v, err := form.Ask(ctx, s.prompter, q)
	if err != nil {
		return handleExecutionError(err)
	}
	fmt.Fprintln(opts.Out, formatAnswer(v, q.Separator))
	return nil
}

func formatAnswer(v any, sep string) string {
	switch vals := v.(type) {
	case []string:
		return strings.Join(vals, sep)
	case []int64:
		return joinValues(vals, sep)
	case []float64:
		return joinValues(vals, sep)
	}
	return fmt.Sprint(v)
}

func joinValues[T any](vals []T, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}
