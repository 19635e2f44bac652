package indicator

import (
	"time"

	"github.com/tidesurf/screener/pkg/datatype/floats"
	"github.com/tidesurf/screener/pkg/types"
)

// CrossAbove flags bar i when line was at or below other on the previous bar
// and is strictly above it now. Equality on the prior bar alone never flags,
// so a flat line sitting on the other series cannot re-trigger. Undefined
// (NaN) entries never flag: every comparison with NaN is false.
func CrossAbove(line, other floats.Slice) []bool {
	length := len(line)
	if len(other) < length {
		length = len(other)
	}

	flags := make([]bool, length)
	for i := 1; i < length; i++ {
		flags[i] = line[i-1] <= other[i-1] && line[i] > other[i]
	}
	return flags
}

// CrossBelowLevel flags bar i when values drops strictly below level after
// sitting at or above it on the previous bar. Used for the RSI oversold
// entry: the flag fires at the first bar under the lower line, not at the
// recovery bar.
func CrossBelowLevel(values floats.Slice, level float64) []bool {
	flags := make([]bool, len(values))
	for i := 1; i < len(values); i++ {
		flags[i] = values[i] < level && values[i-1] >= level
	}
	return flags
}

// LastFlagged returns the timestamp of the most recent flagged bar. The
// boolean result is false when no bar is flagged.
func LastFlagged(flags []bool, series *types.PriceSeries) (time.Time, bool) {
	for i := len(flags) - 1; i >= 0; i-- {
		if flags[i] && i < series.Len() {
			return series.Bars[i].Time, true
		}
	}
	return time.Time{}, false
}
