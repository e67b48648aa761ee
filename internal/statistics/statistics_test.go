package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProportion(t *testing.T) {
	t.Parallel()
	p := Proportion{Successes: 8500, Trials: 10000}

	assert.InDelta(t, 0.85, p.Rate(), 1e-12)
	assert.InDelta(t, 0.85*0.15, p.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(0.85*0.15/10000), p.StdError(), 1e-12)

	lo, hi := p.ConfidenceInterval95()
	assert.Less(t, lo, 0.85)
	assert.Greater(t, hi, 0.85)
	assert.InDelta(t, 0.85-lo, hi-0.85, 1e-12)
	assert.NoError(t, p.Validate())
}

func TestProportionEdges(t *testing.T) {
	t.Parallel()
	var empty Proportion
	assert.Zero(t, empty.Rate())
	assert.Zero(t, empty.StdError())

	all := Proportion{Successes: 3, Trials: 3}
	lo, hi := all.ConfidenceInterval95()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 1.0, hi)

	narrow := Proportion{Successes: 1, Trials: 1000}
	lo, _ = narrow.ConfidenceInterval95()
	assert.GreaterOrEqual(t, lo, 0.0)

	assert.Error(t, Proportion{Successes: 4, Trials: 3}.Validate())
	assert.Error(t, Proportion{Successes: -1, Trials: 3}.Validate())
	assert.Error(t, Proportion{Trials: -1}.Validate())
}
