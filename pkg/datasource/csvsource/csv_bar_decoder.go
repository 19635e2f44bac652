package csvsource

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/tidesurf/screener/pkg/types"
)

var (
	// ErrMissingTimeColumn is returned when the CSV header has no timestamp column.
	ErrMissingTimeColumn = errors.New("price series must contain a Datetime column")

	// ErrMissingCloseColumn is returned when the CSV header has no close-price column.
	ErrMissingCloseColumn = errors.New("price series must contain a Close column")

	// ErrNotEnoughColumns is returned when a CSV record is shorter than the header.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when a timestamp cell cannot be parsed.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when a close-price cell is not a valid decimal.
	ErrInvalidPriceFormat = errors.New("close price must be in valid decimal format")
)

// barTimeFormats are the accepted timestamp layouts, tried in order.
var barTimeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CSVBarDecoder is an extension point for CSVSeriesReader to support custom
// record layouts.
type CSVBarDecoder func(record []string) (types.Bar, error)

// NewHeaderBarDecoder builds a decoder from a CSV header row, locating the
// timestamp and close-price columns by name. Column matching is
// case-insensitive; extra columns are ignored.
func NewHeaderBarDecoder(header []string) (CSVBarDecoder, error) {
	timeIdx, closeIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "datetime", "date", "timestamp":
			if timeIdx < 0 {
				timeIdx = i
			}
		case "close":
			if closeIdx < 0 {
				closeIdx = i
			}
		}
	}

	if timeIdx < 0 {
		return nil, ErrMissingTimeColumn
	}
	if closeIdx < 0 {
		return nil, ErrMissingCloseColumn
	}

	return func(record []string) (types.Bar, error) {
		var b types.Bar

		if len(record) <= timeIdx || len(record) <= closeIdx {
			return b, ErrNotEnoughColumns
		}

		t, err := parseBarTime(record[timeIdx])
		if err != nil {
			return b, err
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(record[closeIdx]), 64)
		if err != nil {
			return b, errors.Wrapf(ErrInvalidPriceFormat, "value %q", record[closeIdx])
		}

		b.Time = t
		b.Close = price
		return b, nil
	}, nil
}

func parseBarTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range barTimeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrInvalidTimeFormat, "value %q", s)
}
