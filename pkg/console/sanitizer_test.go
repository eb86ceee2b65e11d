package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"under limit", DefaultMaxInputSize - 1, false},
		{"at limit", DefaultMaxInputSize, false},
		{"over limit", DefaultMaxInputSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SanitizeInput(strings.Repeat("A", tt.size))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
				assert.True(t, IsTransient(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "1 2 3", "1 2 3"},
		{"tab kept", "A\tB", "A\tB"},
		{"escape sequence", "\x1b[31mRED\x1b[0m", "[31mRED[0m"},
		{"nul", "NUL\x00BYTE", "NULBYTE"},
		{"bell", "DING\x07", "DING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaxInputSize(t *testing.T) {
	assert.Equal(t, DefaultMaxInputSize, MaxInputSize())

	t.Setenv(EnvMaxInputSize, "10")
	assert.Equal(t, 10, MaxInputSize())
	_, err := SanitizeInput("12345678901")
	assert.ErrorIs(t, err, ErrInputTooLarge)
	_, err = SanitizeInput("12345")
	assert.NoError(t, err)

	t.Setenv(EnvMaxInputSize, "-3")
	assert.Equal(t, DefaultMaxInputSize, MaxInputSize())
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("\xbd\xb2\x3d\xbc\x20\xe2\x8c\x98")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.True(t, IsTransient(err))
	assert.False(t, IsTransient(assert.AnError))
}
