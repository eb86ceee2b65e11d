package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/gameinput"
	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/aretw0/gameinput/pkg/scalar"
	"gopkg.in/yaml.v3"
)

// Answer is the accepted value of one question.
type Answer struct {
	ID    string
	Value any
}

// Answers keeps answers in question order.
type Answers []Answer

// Get returns the answer for id.
func (a Answers) Get(id string) (any, bool) {
	for _, ans := range a {
		if ans.ID == id {
			return ans.Value, true
		}
	}
	return nil, false
}

// MarshalYAML encodes the answers as a mapping in question order.
func (a Answers) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, ans := range a {
		var val yaml.Node
		if err := val.Encode(ans.Value); err != nil {
			return nil, fmt.Errorf("encode answer '%s': %w", ans.ID, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ans.ID},
			&val,
		)
	}
	return node, nil
}

// Run shows the title and instructions, then asks every question in order.
// It stops at the first unrecoverable prompt error.
func Run(ctx context.Context, p *gameinput.Prompter, f *Form) (Answers, error) {
	if f.Title != "" {
		p.Intro(f.Title)
	}
	if f.Instructions != nil {
		if err := p.ShowInstructions(ctx, *f.Instructions); err != nil {
			return nil, err
		}
	}

	answers := make(Answers, 0, len(f.Questions))
	for _, q := range f.Questions {
		v, err := Ask(ctx, p, q)
		if err != nil {
			return answers, fmt.Errorf("question '%s': %w", q.ID, err)
		}
		answers = append(answers, Answer{ID: q.ID, Value: v})
	}
	return answers, nil
}

// Ask runs a single question and returns its accepted value: string, bool,
// int64 or float64 (Float set), or a slice of those for multi-value kinds.
func Ask(ctx context.Context, p *gameinput.Prompter, q Question) (any, error) {
	switch q.Kind {
	case domain.KindString:
		return p.String(ctx, q.Message)
	case domain.KindBool:
		return p.Bool(ctx, q.Message, q.Mode)
	case domain.KindMultiString:
		return p.MultiString(ctx, q.Message, q.Separator, q.Count)
	}
	if q.Float {
		return askNumber[float64](ctx, p, q)
	}
	return askNumber[int64](ctx, p, q)
}

func askNumber[T scalar.Number](ctx context.Context, p *gameinput.Prompter, q Question) (any, error) {
	r, err := parseRange[T](q.Range)
	if err != nil {
		return nil, err
	}
	switch q.Kind {
	case domain.KindNumber:
		return gameinput.Number[T](ctx, p, q.Message)
	case domain.KindNumberRange:
		return gameinput.NumberRange(ctx, p, q.Message, r)
	case domain.KindMultiNumber:
		return gameinput.MultiNumber(ctx, p, q.Message, q.Separator, q.Count, r)
	}
	return nil, fmt.Errorf("%w: unknown kind '%s'", ErrInvalidForm, q.Kind)
}

// parseRange parses "LO..HI"; an empty string is unbounded.
func parseRange[T scalar.Number](s string) (domain.Range[T], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.Unbounded[T](), nil
	}
	lo, hi, ok := strings.Cut(s, "..")
	if !ok {
		return domain.Range[T]{}, fmt.Errorf("range %q: expected LO..HI", s)
	}
	l, err := scalar.Parse[T](strings.TrimSpace(lo))
	if err != nil {
		return domain.Range[T]{}, fmt.Errorf("range %q: %w", s, err)
	}
	h, err := scalar.Parse[T](strings.TrimSpace(hi))
	if err != nil {
		return domain.Range[T]{}, fmt.Errorf("range %q: %w", s, err)
	}
	r := domain.Between(l, h)
	return r, r.Validate()
}
