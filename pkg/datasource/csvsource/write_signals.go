package csvsource

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"

	"github.com/tidesurf/screener/pkg/types"
)

// signalTimeFormat matches the timestamp layout of the input daily files.
const signalTimeFormat = "2006-01-02 15:04:05"

var signalHeader = []string{"Datetime", "symbol", "signal type"}

// WriteSignals appends signal records to the CSV log at path. The header row
// is written only when the file does not exist yet; subsequent runs append
// records without a header, without deduplication, and without rollback on
// partial writes.
func WriteSignals(path string, records []types.SignalRecord) (err error) {
	writeHeader := false
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		writeHeader = true
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "can not open signal log %s", path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "can not close signal log %s", path)
		}
	}()

	w := csv.NewWriter(file)

	if writeHeader {
		if err := w.Write(signalHeader); err != nil {
			return errors.Wrap(err, "writing header to signal log")
		}
	}

	for _, r := range records {
		row := []string{
			r.Time.Format(signalTimeFormat),
			r.Symbol,
			string(r.SignalType),
		}
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "writing record to signal log")
		}
	}

	w.Flush()
	return errors.Wrap(w.Error(), "flushing signal log")
}
