package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructions_Lines(t *testing.T) {
	single := NewInstructions(true, YesNo, "INSTRUCTIONS?", "GUESS THE NUMBER")
	assert.False(t, single.Multiline)
	assert.Equal(t, []string{"GUESS THE NUMBER"}, single.Lines())

	lines := []string{"LINE ONE", "", "LINE THREE"}
	multi := NewMultilineInstructions(true, OneZero, "INSTRUCTIONS (1 OR 0)?", lines)
	lines[0] = "changed"
	assert.True(t, multi.Multiline)
	assert.Equal(t, []string{"LINE ONE", "", "LINE THREE"}, multi.Lines())
	assert.Equal(t, OneZero, multi.Mode)

	assert.Equal(t, []string{""}, Instructions{}.Lines())
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, OneZero, ModeFor(true))
	assert.Equal(t, YesNo, ModeFor(false))
	assert.Equal(t, "one_zero", OneZero.String())
}

func TestBoolMode_UnmarshalText(t *testing.T) {
	var m BoolMode
	assert.NoError(t, m.UnmarshalText([]byte("one_zero")))
	assert.Equal(t, OneZero, m)
	assert.NoError(t, m.UnmarshalText([]byte("yes_no")))
	assert.Equal(t, YesNo, m)
	assert.Error(t, m.UnmarshalText([]byte("maybe")))

	text, err := OneZero.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "one_zero", string(text))
}
