package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_ReadLineNormalizes(t *testing.T) {
	c := New(strings.NewReader(" yes \nNo\r\n\tmixed Case\t\n"), &bytes.Buffer{})
	ctx := context.Background()

	for _, want := range []string{"YES", "NO", "MIXED CASE"} {
		got, err := c.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestConsole_ReadLineFinalLineWithoutTerminator(t *testing.T) {
	c := New(strings.NewReader("last"), &bytes.Buffer{})

	got, err := c.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "LAST", got)

	_, err = c.ReadLine(context.Background())
	assert.ErrorIs(t, err, domain.ErrInputClosed)
}

func TestConsole_ReadLineEmptyInput(t *testing.T) {
	c := New(strings.NewReader(""), &bytes.Buffer{})
	_, err := c.ReadLine(context.Background())
	assert.ErrorIs(t, err, domain.ErrInputClosed)
}

func TestConsole_ReadLineBlankLine(t *testing.T) {
	c := New(strings.NewReader("\n"), &bytes.Buffer{})
	got, err := c.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestConsole_ReadLineCancelled(t *testing.T) {
	c := New(strings.NewReader("1\n"), &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsole_ReadLineSanitizes(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "8")
	c := New(strings.NewReader("123456789\nA\x07B\n"), &bytes.Buffer{})
	ctx := context.Background()

	_, err := c.ReadLine(ctx)
	require.Error(t, err)
	assert.True(t, IsTransient(err))

	got, err := c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AB", got)
}

func TestConsole_Echo(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(strings.NewReader("hello\n"), out, WithEcho(true))

	_, err := c.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out.String())
}

func TestConsole_Output(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(strings.NewReader(""), out)

	c.Println("WELCOME")
	c.Printf("THERE MUST BE %d UNITS", 2)
	c.Render([]string{"A", "B"})

	assert.Equal(t, "WELCOME\nTHERE MUST BE 2 UNITS\nA\nB\n", out.String())
	assert.False(t, c.Interactive())
}

func TestConsole_RenderWithRenderer(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(nil, out, WithRenderer(func(s string) (string, error) {
		return "Rendered: " + strings.ReplaceAll(s, "\n", "|") + "\n\n", nil
	}))

	c.Render([]string{"ONE", "TWO"})
	assert.Equal(t, "Rendered: ONE|TWO\n", out.String())
}
