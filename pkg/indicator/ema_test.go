package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidesurf/screener/pkg/datatype/floats"
)

const Delta = 1e-9

func TestEMA_Warmup(t *testing.T) {
	const c = 42.5
	values := make(floats.Slice, 12)
	for i := range values {
		values[i] = c
	}

	out, err := EMA(values, 5)
	assert.NoError(t, err)
	assert.Equal(t, len(values), len(out))

	for i := 0; i < 4; i++ {
		assert.True(t, math.IsNaN(out[i]), "index %d should be undefined", i)
	}
	for i := 4; i < len(out); i++ {
		assert.InDelta(t, c, out[i], Delta, "index %d", i)
	}
}

func TestEMA_KnownValues(t *testing.T) {
	out, err := EMA(floats.New(1, 2, 3, 4, 5), 2)
	assert.NoError(t, err)

	assert.True(t, math.IsNaN(out[0]))
	want := []float64{1.5, 2.5, 3.5, 4.5}
	for i, w := range want {
		assert.InDelta(t, w, out[i+1], Delta)
	}
}

func TestEMA_NaNPrefixShiftsSchedule(t *testing.T) {
	// A NaN warm-up prefix on the input, e.g. a MACD line fed into the signal
	// line EMA, postpones the seed until enough defined values accumulated.
	values := floats.New(math.NaN(), math.NaN(), math.NaN(), 10, 10, 10, 10)

	out, err := EMA(values, 3)
	assert.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.True(t, math.IsNaN(out[i]), "index %d should be undefined", i)
	}
	assert.InDelta(t, 10.0, out[5], Delta)
	assert.InDelta(t, 10.0, out[6], Delta)
}

func TestEMA_InvalidInput(t *testing.T) {
	_, err := EMA(nil, 5)
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = EMA(floats.New(1, 2, 3), 0)
	assert.ErrorIs(t, err, ErrInvalidParameters)

	_, err = EMA(floats.New(1, 2, 3), -2)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}
