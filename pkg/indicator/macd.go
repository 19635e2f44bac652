package indicator

import (
	"github.com/pkg/errors"

	"github.com/tidesurf/screener/pkg/datatype/floats"
)

/*
macd implements moving average convergence divergence

Moving Average Convergence Divergence (MACD)
- https://www.investopedia.com/terms/m/macd.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:macd-histogram
*/

// MACDResult holds the three derived series, each aligned 1:1 with the input
// closes. All three are fully defined once slow+signal-1 bars have
// accumulated.
type MACDResult struct {
	Line       floats.Slice
	SignalLine floats.Slice
	Histogram  floats.Slice
}

// MACD computes the MACD line as EMA(fast) - EMA(slow), the signal line as an
// EMA of the MACD line, and the histogram as their difference.
func MACD(closes floats.Slice, fastWindow, slowWindow, signalWindow int) (*MACDResult, error) {
	if len(closes) == 0 {
		return nil, ErrEmptySeries
	}
	if fastWindow <= 0 || slowWindow <= 0 || signalWindow <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameters,
			"macd windows must be positive, got fast=%d slow=%d signal=%d",
			fastWindow, slowWindow, signalWindow)
	}
	if fastWindow >= slowWindow {
		return nil, errors.Wrapf(ErrInvalidParameters,
			"macd fast window must be shorter than slow window, got fast=%d slow=%d",
			fastWindow, slowWindow)
	}

	fast := ema(closes, fastWindow)
	slow := ema(closes, slowWindow)

	// NaN propagates through Sub, so the line is undefined until the slow EMA
	// is, and the signal line seeds from the first defined MACD value.
	line := fast.Sub(slow)
	signalLine := ema(line, signalWindow)
	histogram := line.Sub(signalLine)

	return &MACDResult{
		Line:       line,
		SignalLine: signalLine,
		Histogram:  histogram,
	}, nil
}
