package types

import "time"

// SignalType labels which indicator produced a signal. The set is a closed
// enumeration; adding an indicator means adding a constant here and pairing it
// with its scan function at the pipeline level.
type SignalType string

const (
	SignalTypeMACD SignalType = "MACD"
	SignalTypeRSI  SignalType = "RSI"
)

// SignalRecord is an immutable fact that an indicator fired a bullish
// condition for a symbol at a bar. Records carry no identity beyond their
// value, so the signal log is an append-only multiset.
type SignalRecord struct {
	Time       time.Time  `json:"time"`
	Symbol     string     `json:"symbol"`
	SignalType SignalType `json:"signalType"`
}
