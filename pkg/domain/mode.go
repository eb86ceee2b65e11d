package domain

import "fmt"

// BoolMode selects the answer format of a yes/no question.
type BoolMode int

const (
	// YesNo expects YES, Y, NO or N.
	YesNo BoolMode = iota
	// OneZero expects 1 for yes and 0 for no.
	OneZero
)

// ModeFor maps the historical "numeric" flag to a BoolMode.
func ModeFor(numeric bool) BoolMode {
	if numeric {
		return OneZero
	}
	return YesNo
}

func (m BoolMode) String() string {
	switch m {
	case YesNo:
		return "yes_no"
	case OneZero:
		return "one_zero"
	default:
		return fmt.Sprintf("BoolMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m BoolMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts yes_no or one_zero (and the aliases yesno, numeric).
func (m *BoolMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "yes_no", "yesno", "":
		*m = YesNo
	case "one_zero", "numeric":
		*m = OneZero
	default:
		return fmt.Errorf("unknown bool mode %q", text)
	}
	return nil
}
