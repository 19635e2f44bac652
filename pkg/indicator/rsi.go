package indicator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/tidesurf/screener/pkg/datatype/floats"
)

/*
rsi implements Relative Strength Index (RSI)

https://www.investopedia.com/terms/r/rsi.asp
https://school.stockcharts.com/doku.php?id=technical_indicators:relative_strength_index_rsi
*/

// RSI computes the Wilder-smoothed Relative Strength Index over the given
// period, aligned 1:1 with the input closes. The first period entries are
// NaN: the average gain and loss seed with the simple mean of the first
// period deltas, then follow avg = (prev*(period-1) + current) / period.
func RSI(closes floats.Slice, period int) (floats.Slice, error) {
	if len(closes) == 0 {
		return nil, ErrEmptySeries
	}
	if period <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameters, "rsi period must be positive, got %d", period)
	}

	out := floats.NaNSlice(len(closes))

	var sumGain, sumLoss float64
	var avgGain, avgLoss float64

	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		gain := math.Max(delta, 0)
		loss := -math.Min(delta, 0)

		switch {
		case i < period:
			sumGain += gain
			sumLoss += loss
			continue

		case i == period:
			sumGain += gain
			sumLoss += loss
			avgGain = sumGain / float64(period)
			avgLoss = sumLoss / float64(period)

		default:
			avgGain = (avgGain*float64(period-1) + gain) / float64(period)
			avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		}

		if avgLoss == 0 {
			// RS is +Inf, which drives RSI to its upper bound.
			out[i] = 100.0
			continue
		}

		rs := avgGain / avgLoss
		out[i] = 100.0 - 100.0/(1.0+rs)
	}

	return out, nil
}
