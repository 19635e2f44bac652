package types

import (
	"time"

	"github.com/tidesurf/screener/pkg/datatype/floats"
)

// Bar is a single timestamped closing price observation.
type Bar struct {
	Time  time.Time `json:"time"`
	Close float64   `json:"close"`
}

// PriceSeries is an ordered sequence of bars for one symbol. Timestamps are
// strictly increasing; indicators read the series without mutating it.
type PriceSeries struct {
	Symbol string `json:"symbol"`
	Bars   []Bar  `json:"bars"`
}

func (s *PriceSeries) Len() int {
	return len(s.Bars)
}

// Closes returns the closing prices as a new slice aligned 1:1 with Bars.
func (s *PriceSeries) Closes() floats.Slice {
	closes := make(floats.Slice, 0, len(s.Bars))
	for _, b := range s.Bars {
		closes.Push(b.Close)
	}
	return closes
}

// Times returns the bar timestamps aligned 1:1 with Bars.
func (s *PriceSeries) Times() []time.Time {
	times := make([]time.Time, 0, len(s.Bars))
	for _, b := range s.Bars {
		times = append(times, b.Time)
	}
	return times
}
