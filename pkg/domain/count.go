package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CountKind tags which variant of Count is in use.
type CountKind int

const (
	// CountAny places no constraint on the number of elements.
	CountAny CountKind = iota
	// CountExact requires exactly N elements.
	CountExact
	// CountRange requires between Min and Max elements, inclusive.
	CountRange
)

func (k CountKind) String() string {
	switch k {
	case CountAny:
		return "any"
	case CountExact:
		return "exact"
	case CountRange:
		return "range"
	default:
		return fmt.Sprintf("CountKind(%d)", int(k))
	}
}

// Count constrains how many elements a multi-value answer may contain.
// The zero value accepts any count.
type Count struct {
	kind CountKind
	n    int
	min  int
	max  int
}

// AnyCount returns a Count that accepts any number of elements.
func AnyCount() Count { return Count{} }

// Exactly requires exactly n elements.
func Exactly(n int) Count {
	return Count{kind: CountExact, n: n}
}

// CountBetween requires between lo and hi elements, inclusive.
func CountBetween(lo, hi int) Count {
	return Count{kind: CountRange, min: lo, max: hi}
}

// Kind reports which variant c is.
func (c Count) Kind() CountKind { return c.kind }

// N is the required count of an exact constraint.
func (c Count) N() int { return c.n }

// Bounds returns the inclusive bounds of a range constraint.
func (c Count) Bounds() (lo, hi int) { return c.min, c.max }

// Allows reports whether n elements satisfy the constraint.
func (c Count) Allows(n int) bool {
	switch c.kind {
	case CountExact:
		return n == c.n
	case CountRange:
		return n >= c.min && n <= c.max
	default:
		return true
	}
}

// Validate reports a constraint that no answer could satisfy.
func (c Count) Validate() error {
	switch c.kind {
	case CountExact:
		if c.n < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidCount, c.n)
		}
	case CountRange:
		if c.min > c.max {
			return fmt.Errorf("%w: count %d..%d", ErrInvalidRange, c.min, c.max)
		}
	}
	return nil
}

func (c Count) String() string {
	switch c.kind {
	case CountExact:
		return fmt.Sprintf("%d", c.n)
	case CountRange:
		return fmt.Sprintf("%d..%d", c.min, c.max)
	default:
		return "any"
	}
}

// UnmarshalText parses "any", "N" or "LO..HI".
func (c *Count) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" || s == "any" {
		*c = AnyCount()
		return nil
	}
	if lo, hi, ok := strings.Cut(s, ".."); ok {
		l, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return fmt.Errorf("count %q: %w", s, err)
		}
		h, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return fmt.Errorf("count %q: %w", s, err)
		}
		*c = CountBetween(l, h)
		return c.Validate()
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("count %q: %w", s, err)
	}
	*c = Exactly(n)
	return c.Validate()
}

// MarshalText implements encoding.TextMarshaler.
func (c Count) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
