package csvsource

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/tidesurf/screener/pkg/types"
)

// CSVSeriesReader reads a price series from CSV data. The first record is
// treated as a header naming the timestamp and close-price columns; the
// decoder built from it drives the remaining records.
type CSVSeriesReader struct {
	csv     *csv.Reader
	decoder CSVBarDecoder
}

// NewCSVSeriesReader creates a reader that resolves its decoder from the
// header row on the first Read call.
func NewCSVSeriesReader(csv *csv.Reader) *CSVSeriesReader {
	return &CSVSeriesReader{csv: csv}
}

// NewCSVSeriesReaderWithDecoder creates a reader with a fixed decoder for
// headerless data.
func NewCSVSeriesReaderWithDecoder(csv *csv.Reader, decoder CSVBarDecoder) *CSVSeriesReader {
	return &CSVSeriesReader{csv: csv, decoder: decoder}
}

// Read reads the next bar from the underlying CSV data.
func (r *CSVSeriesReader) Read() (types.Bar, error) {
	if r.decoder == nil {
		header, err := r.csv.Read()
		if err != nil {
			return types.Bar{}, err
		}

		decoder, err := NewHeaderBarDecoder(header)
		if err != nil {
			return types.Bar{}, err
		}
		r.decoder = decoder
	}

	rec, err := r.csv.Read()
	if err != nil {
		return types.Bar{}, err
	}

	return r.decoder(rec)
}

// ReadAll reads all the bars from the underlying CSV data.
func (r *CSVSeriesReader) ReadAll() ([]types.Bar, error) {
	var bars []types.Bar
	for {
		b, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}

	return bars, nil
}

// ReadPriceSeries loads one symbol's price series from a CSV file.
func ReadPriceSeries(path, symbol string) (*types.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can not open price series file %s", path)
	}
	defer f.Close()

	// Records may carry trailing columns beyond the header; the decoder only
	// touches the columns it resolved.
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	bars, err := NewCSVSeriesReader(reader).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "can not read price series file %s", path)
	}

	return &types.PriceSeries{Symbol: symbol, Bars: bars}, nil
}
