package screener

import (
	"time"

	"github.com/tidesurf/screener/pkg/indicator"
	"github.com/tidesurf/screener/pkg/types"
)

// ScanResult carries the per-bar buy flags for one (symbol, indicator)
// invocation, aligned 1:1 with the price series, plus the timestamp of the
// most recent flagged bar as an auxiliary summary.
type ScanResult struct {
	Flags []bool

	LastSignal    time.Time
	HasLastSignal bool
}

// ScanFunc applies one indicator to a price series with the run's parameters.
type ScanFunc func(series *types.PriceSeries, config *Config) (*ScanResult, error)

// Indicator pairs a scan function with the signal type it emits. The explicit
// pairing is what names the signal in the log; nothing is derived from
// function names.
type Indicator struct {
	Type types.SignalType
	Scan ScanFunc
}

// DefaultIndicators returns the MACD bullish-crossover and RSI
// oversold-entry scans, in processing order.
func DefaultIndicators() []Indicator {
	return []Indicator{
		{Type: types.SignalTypeMACD, Scan: ScanMACDCrossUp},
		{Type: types.SignalTypeRSI, Scan: ScanRSIOversold},
	}
}

// ScanMACDCrossUp flags bars where the MACD line crosses above its signal
// line.
func ScanMACDCrossUp(series *types.PriceSeries, config *Config) (*ScanResult, error) {
	macd, err := indicator.MACD(series.Closes(),
		config.MACD.FastLength, config.MACD.SlowLength, config.MACD.SignalLength)
	if err != nil {
		return nil, err
	}

	flags := indicator.CrossAbove(macd.Line, macd.SignalLine)
	return newScanResult(flags, series), nil
}

// ScanRSIOversold flags bars where the RSI drops below the configured lower
// line, i.e. the first oversold bar rather than the recovery bar.
func ScanRSIOversold(series *types.PriceSeries, config *Config) (*ScanResult, error) {
	rsi, err := indicator.RSI(series.Closes(), config.RSI.Period)
	if err != nil {
		return nil, err
	}

	flags := indicator.CrossBelowLevel(rsi, config.RSI.LowLine)
	return newScanResult(flags, series), nil
}

func newScanResult(flags []bool, series *types.PriceSeries) *ScanResult {
	result := &ScanResult{Flags: flags}
	result.LastSignal, result.HasLastSignal = indicator.LastFlagged(flags, series)
	return result
}
