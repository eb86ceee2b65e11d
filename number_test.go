package gameinput

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	p, out := newTestPrompter("ten\n\n1.5\n10\n")

	got, err := Number[int](context.Background(), p, "HOW MANY")
	require.NoError(t, err)
	assert.Equal(t, 10, got)
	assert.Equal(t, []string{
		"HOW MANY", MsgValidNumber,
		"HOW MANY", MsgValidNumber,
		"HOW MANY", MsgValidNumber,
		"HOW MANY",
	}, lines(out.String()))
}

func TestNumber_Float(t *testing.T) {
	p, _ := newTestPrompter("2.75\n")

	got, err := Number[float64](context.Background(), p, "PRICE")
	require.NoError(t, err)
	assert.InDelta(t, 2.75, got, 1e-9)
}

func TestNumber_Overflow(t *testing.T) {
	p, out := newTestPrompter("300\n200\n")

	got, err := Number[uint8](context.Background(), p, "BYTE")
	require.NoError(t, err)
	assert.Equal(t, uint8(200), got)
	assert.Contains(t, out.String(), MsgValidNumber)
}

func TestNumber_UnsignedLeadingPlus(t *testing.T) {
	p, out := newTestPrompter("+5\n")

	got, err := Number[uint](context.Background(), p, "HOW MANY")
	require.NoError(t, err)
	assert.Equal(t, uint(5), got)
	assert.NotContains(t, out.String(), MsgValidNumber)
}

func TestNumber_HexFloatRejected(t *testing.T) {
	p, out := newTestPrompter("0x1p4\n16\n")

	got, err := Number[float64](context.Background(), p, "PRICE")
	require.NoError(t, err)
	assert.InDelta(t, 16.0, got, 1e-9)
	assert.Equal(t, []string{"PRICE", MsgValidNumber, "PRICE"}, lines(out.String()))
}

func TestNumberRange_AcceptsEveryValueInBounds(t *testing.T) {
	for n := -3; n <= 3; n++ {
		p, out := newTestPrompter(fmt.Sprintf("%d\n", n))

		got, err := NumberRange(context.Background(), p, "PICK", domain.Between(-3, 3))
		require.NoError(t, err)
		assert.Equal(t, n, got)
		assert.Equal(t, "PICK\n", out.String())
	}
}

func TestNumberRange_RejectsOutOfBounds(t *testing.T) {
	for _, n := range []int{-4, 4, 100} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			p, out := newTestPrompter(fmt.Sprintf("%d\n0\n", n))

			got, err := NumberRange(context.Background(), p, "PICK", domain.Between(-3, 3))
			require.NoError(t, err)
			assert.Equal(t, 0, got)
			assert.Equal(t, []string{"PICK", "ENTER A NUMBER WITHIN -3, AND 3", "PICK"}, lines(out.String()))
		})
	}
}

func TestNumberRange_ParseFailureMessage(t *testing.T) {
	p, out := newTestPrompter("abc\n7\n")

	_, err := NumberRange(context.Background(), p, "PICK", domain.Between(1, 9))
	require.NoError(t, err)
	assert.Equal(t, []string{"PICK", MsgValidNumber, "PICK"}, lines(out.String()))
}

func TestNumberRange_InvertedRangeFailsFast(t *testing.T) {
	p, out := newTestPrompter("5\n")

	_, err := NumberRange(context.Background(), p, "PICK", domain.Between(9, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	assert.Empty(t, out.String())
}

type direction string

func parseDirection(s string) (direction, error) {
	switch s {
	case "N", "E", "S", "W":
		return direction(s), nil
	}
	return "", fmt.Errorf("not a direction: %q", s)
}

func TestValueRange_CustomParser(t *testing.T) {
	p, out := newTestPrompter("up\nw\ne\n")

	got, err := ValueRange[direction](context.Background(), p, "WHICH WAY", parseDirection, domain.Between[direction]("A", "M"))
	require.NoError(t, err)
	assert.Equal(t, direction("E"), got)
	assert.Equal(t, []string{
		"WHICH WAY", MsgValidNumber,
		"WHICH WAY", "ENTER A NUMBER WITHIN A, AND M",
		"WHICH WAY",
	}, lines(out.String()))
}

func TestValue_CustomParser(t *testing.T) {
	p, out := newTestPrompter("s\n")

	got, err := Value[direction](context.Background(), p, "WHICH WAY", parseDirection)
	require.NoError(t, err)
	assert.Equal(t, direction("S"), got)
	assert.Equal(t, "WHICH WAY\n", out.String())
}
