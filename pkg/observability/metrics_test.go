package observability

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/gameinput"
	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsPromptLoop(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	var forwarded int
	hooks := m.Hooks(domain.PromptHooks{
		OnReject: func(context.Context, *domain.PromptEvent) { forwarded++ },
	})

	p := gameinput.New(
		gameinput.WithInput(strings.NewReader("x\n99\n5\nmaybe\ny\n")),
		gameinput.WithOutput(&strings.Builder{}),
		gameinput.WithHooks(hooks),
	)
	ctx := context.Background()

	_, err = gameinput.NumberRange(ctx, p, "GUESS", domain.Between(1, 10))
	require.NoError(t, err)
	_, err = p.Bool(ctx, "AGAIN?", domain.YesNo)
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Attempts.WithLabelValues("number_range")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejects.WithLabelValues("number_range", "parse")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejects.WithLabelValues("number_range", "range")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejects.WithLabelValues("bool", "token")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Accepts.WithLabelValues("bool")))
	assert.Equal(t, 3, forwarded)

	totals, err := Totals(reg)
	require.NoError(t, err)
	assert.Equal(t, 5.0, totals["gameinput_prompt_attempts_total"])
	assert.Equal(t, 3.0, totals["gameinput_prompt_rejections_total"])
	assert.Equal(t, 2.0, totals["gameinput_prompt_accepted_total"])
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}
