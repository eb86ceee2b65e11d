package gameinput

import (
	"cmp"
	"context"

	"github.com/aretw0/gameinput/internal/validator"
	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/aretw0/gameinput/pkg/scalar"
)

// Number asks for a single value of type T until one parses.
func Number[T scalar.Number](ctx context.Context, p *Prompter, msg string) (T, error) {
	return value(ctx, p, domain.KindNumber, msg, scalar.For[T](), domain.Unbounded[T]())
}

// NumberRange asks for a single value of type T within r (inclusive).
// An inverted r is rejected with domain.ErrInvalidRange before anything is shown.
func NumberRange[T scalar.Number](ctx context.Context, p *Prompter, msg string, r domain.Range[T]) (T, error) {
	return value(ctx, p, domain.KindNumberRange, msg, scalar.For[T](), r)
}

// Value is Number for any ordered type with its own parser.
func Value[T cmp.Ordered](ctx context.Context, p *Prompter, msg string, parse scalar.Parser[T]) (T, error) {
	return value(ctx, p, domain.KindNumber, msg, parse, domain.Unbounded[T]())
}

// ValueRange is NumberRange for any ordered type with its own parser.
func ValueRange[T cmp.Ordered](ctx context.Context, p *Prompter, msg string, parse scalar.Parser[T], r domain.Range[T]) (T, error) {
	return value(ctx, p, domain.KindNumberRange, msg, parse, r)
}

func value[T cmp.Ordered](ctx context.Context, p *Prompter, kind domain.PromptKind, msg string, parse scalar.Parser[T], r domain.Range[T]) (T, error) {
	var answer T
	if err := r.Validate(); err != nil {
		return answer, err
	}

	err := p.loop(ctx, kind, msg, func(line string) *rejection {
		n, err := parse(line)
		if err != nil {
			return reject(domain.ReasonParse, MsgValidNumber)
		}
		if diag, ok := validator.CheckValue(r, n, MsgNumberRange); !ok {
			return reject(domain.ReasonRange, diag)
		}
		answer = n
		return nil
	})
	return answer, err
}
