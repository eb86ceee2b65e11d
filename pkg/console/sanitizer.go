package console

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxInputSize is the longest answer line, in bytes, accepted when
// EnvMaxInputSize is unset or not a positive integer.
const DefaultMaxInputSize = 4096

// EnvMaxInputSize overrides DefaultMaxInputSize.
const EnvMaxInputSize = "GAMEINPUT_MAX_INPUT_SIZE"

// Errors returned for a line that cannot be used as an answer. Both are
// transient: the line is dropped and the player is asked again.
var (
	ErrInputTooLarge = errors.New("input line too long")
	ErrInvalidUTF8   = errors.New("input line is not valid UTF-8")
)

// MaxInputSize returns the line limit in effect.
func MaxInputSize() int {
	if n, err := strconv.Atoi(os.Getenv(EnvMaxInputSize)); err == nil && n > 0 {
		return n
	}
	return DefaultMaxInputSize
}

// SanitizeInput checks an answer line and drops terminal control characters
// from it. Tab is kept. An overlong line is an error, never truncated.
func SanitizeInput(line string) (string, error) {
	if limit := MaxInputSize(); len(line) > limit {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrInputTooLarge, len(line), limit)
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}
	if strings.IndexFunc(line, dropped) < 0 {
		return line, nil
	}
	return strings.Map(func(r rune) rune {
		if dropped(r) {
			return -1
		}
		return r
	}, line), nil
}

// IsTransient reports whether err only rules out the current line.
func IsTransient(err error) bool {
	return errors.Is(err, ErrInputTooLarge) || errors.Is(err, ErrInvalidUTF8)
}

func dropped(r rune) bool {
	return r != '\t' && unicode.IsControl(r)
}
