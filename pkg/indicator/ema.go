package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/tidesurf/screener/pkg/datatype/floats"
)

/*
ema implements the exponential moving average

- https://www.investopedia.com/ask/answers/122314/what-exponential-moving-average-ema-formula-and-how-ema-calculated.asp
*/

// EMA returns the exponential moving average of values over the given window,
// aligned 1:1 with the input. The smoothing factor is 2/(window+1). The first
// window-1 defined inputs produce NaN; the window-th seeds the recursion with
// their simple average. A NaN prefix on the input (e.g. the warm-up of another
// indicator) shifts the whole schedule: the recursion starts window defined
// values after the first defined input.
func EMA(values floats.Slice, window int) (floats.Slice, error) {
	if len(values) == 0 {
		return nil, ErrEmptySeries
	}
	if window <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameters, "ema window must be positive, got %d", window)
	}

	return ema(values, window), nil
}

func ema(values floats.Slice, window int) floats.Slice {
	out := floats.NaNSlice(len(values))
	multiplier := 2.0 / (float64(window) + 1)

	var sum float64
	var seen int
	var prev float64
	seeded := false

	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}

		if !seeded {
			sum += v
			seen++
			if seen == window {
				prev = sum / float64(window)
				out[i] = prev
				seeded = true
			}
			continue
		}

		prev = multiplier*v + (1-multiplier)*prev
		out[i] = prev
	}

	return out
}
