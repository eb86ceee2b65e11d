package gameinput

import (
	"cmp"
	"context"
	"strings"

	"github.com/aretw0/gameinput/internal/validator"
	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/aretw0/gameinput/pkg/scalar"
)

// MultiString asks for a line of units separated by sep.
//
// Splitting is literal and keeps empty units, so an empty line is one empty unit.
// When count constrains the number of units, a mismatch is reported and the
// question asked again.
func (p *Prompter) MultiString(ctx context.Context, msg, sep string, count domain.Count) ([]string, error) {
	if err := count.Validate(); err != nil {
		return nil, err
	}

	var answer []string
	err := p.loop(ctx, domain.KindMultiString, msg, func(line string) *rejection {
		units := strings.Split(line, sep)
		if diag, ok := validator.CheckCount(count, len(units)); !ok {
			return reject(domain.ReasonCount, diag)
		}
		answer = units
		return nil
	})
	return answer, err
}

// MultiNumber asks for a line of numbers separated by sep.
//
// The count is checked first, then every unit is parsed and checked against r in
// order. The first failure discards the whole line.
func MultiNumber[T scalar.Number](ctx context.Context, p *Prompter, msg, sep string, count domain.Count, r domain.Range[T]) ([]T, error) {
	return MultiValue(ctx, p, msg, sep, count, scalar.For[T](), r)
}

// MultiValue is MultiNumber for any ordered type with its own parser.
func MultiValue[T cmp.Ordered](ctx context.Context, p *Prompter, msg, sep string, count domain.Count, parse scalar.Parser[T], r domain.Range[T]) ([]T, error) {
	if err := count.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var answer []T
	err := p.loop(ctx, domain.KindMultiNumber, msg, func(line string) *rejection {
		units := strings.Split(line, sep)
		if diag, ok := validator.CheckCount(count, len(units)); !ok {
			return reject(domain.ReasonCount, diag)
		}

		nums := make([]T, 0, len(units))
		for _, u := range units {
			n, err := parse(u)
			if err != nil {
				return reject(domain.ReasonParse, MsgOnlyNumbers)
			}
			if diag, ok := validator.CheckValue(r, n, MsgElemRange); !ok {
				return reject(domain.ReasonRange, diag)
			}
			nums = append(nums, n)
		}
		answer = nums
		return nil
	})
	return answer, err
}
