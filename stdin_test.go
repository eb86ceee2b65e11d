package gameinput

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func useDefault(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	out := &bytes.Buffer{}
	prev := std
	SetDefault(New(WithInput(strings.NewReader(input)), WithOutput(out)))
	t.Cleanup(func() { SetDefault(prev) })
	return out
}

func TestShortcuts(t *testing.T) {
	out := useDefault(t, "arthur\nn\n1\n42\n7\na b\n1,2,3\ny\n")

	PrintIntro("QUEST")
	assert.Equal(t, "ARTHUR", PromptString("NAME?"))
	assert.False(t, PromptBool("SWALLOW?", false))
	assert.True(t, PromptBool("AGAIN (1/0)?", true))
	assert.Equal(t, int64(42), PromptNumber[int64]("ANSWER?"))
	assert.Equal(t, 7, PromptNumberRange("LUCKY?", 1, 9))
	assert.Equal(t, []string{"A", "B"}, PromptMultiString("TWO WORDS", " ", domain.Exactly(2)))
	assert.Equal(t, []uint{1, 2, 3}, PromptMultiNumber("DICE", ",", domain.CountBetween(1, 3), domain.Between[uint](1, 6)))
	ShowInstructions(domain.NewInstructions(true, domain.YesNo, "HELP?", "NO HELP HERE"))

	assert.Contains(t, out.String(), "CREATIVE COMPUTING")
	assert.Contains(t, out.String(), "NO HELP HERE\n")
}

func TestShortcuts_FatalOnClosedInput(t *testing.T) {
	useDefault(t, "")

	var code int
	prevExit := Exit
	Exit = func(c int) { code = c }
	t.Cleanup(func() { Exit = prevExit })

	got := PromptNumber[int]("N?")
	assert.Equal(t, 1, code)
	assert.Zero(t, got)
}
