package screener

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tidesurf/screener/pkg/datasource/csvsource"
	"github.com/tidesurf/screener/pkg/types"
)

// Screener walks a directory of per-symbol CSV price series and applies a
// list of indicator scans to each, collecting one SignalRecord per flagged
// bar. A failure in one (symbol, indicator) pair is logged and does not stop
// the rest of the run.
type Screener struct {
	config     *Config
	indicators []Indicator

	mu       sync.Mutex
	records  []types.SignalRecord
	failures int
}

func New(config *Config, indicators ...Indicator) *Screener {
	if len(indicators) == 0 {
		indicators = DefaultIndicators()
	}

	return &Screener{
		config:     config,
		indicators: indicators,
	}
}

// Run screens every *.csv file under the input directory and returns the
// accumulated signal records in append order. Symbols fan out across at most
// Workers goroutines; with one worker the run is fully sequential. A missing
// input directory fails the run before any computation.
func (s *Screener) Run(ctx context.Context) ([]types.SignalRecord, error) {
	entries, err := os.ReadDir(s.config.InputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "input directory %s is not readable", s.config.InputDir)
	}

	s.records = nil
	s.failures = 0

	workers := s.config.Workers
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var scanned int
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}

		scanned++
		name := entry.Name()
		symbol := strings.TrimSuffix(name, filepath.Ext(name))
		path := filepath.Join(s.config.InputDir, name)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s.scanSymbol(symbol, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Infof("screened %d files, %d signals, %d failed scans",
		scanned, len(s.records), s.failures)
	return s.records, nil
}

// scanSymbol loads one symbol's series and applies every indicator to it.
// Errors are isolated per (symbol, indicator) pair: they are logged with the
// pair identified and scanning continues.
func (s *Screener) scanSymbol(symbol, path string) {
	series, err := csvsource.ReadPriceSeries(path, symbol)
	if err != nil {
		s.recordFailure(symbol, "", err)
		return
	}

	for _, ind := range s.indicators {
		result, err := ind.Scan(series, s.config)
		if err != nil {
			s.recordFailure(symbol, ind.Type, err)
			continue
		}

		var found []types.SignalRecord
		for i, flagged := range result.Flags {
			if flagged && i < series.Len() {
				found = append(found, types.SignalRecord{
					Time:       series.Bars[i].Time,
					Symbol:     symbol,
					SignalType: ind.Type,
				})
			}
		}

		if result.HasLastSignal {
			log.WithFields(log.Fields{
				"symbol":    symbol,
				"indicator": ind.Type,
			}).Debugf("most recent signal at %s", result.LastSignal.Format("2006-01-02"))
		}

		s.append(found)
	}
}

func (s *Screener) append(records []types.SignalRecord) {
	if len(records) == 0 {
		return
	}

	s.mu.Lock()
	s.records = append(s.records, records...)
	s.mu.Unlock()
}

func (s *Screener) recordFailure(symbol string, signalType types.SignalType, err error) {
	entry := log.WithField("symbol", symbol)
	if signalType != "" {
		entry = entry.WithField("indicator", signalType)
	}
	entry.WithError(err).Error("scan failed, skipping")

	s.mu.Lock()
	s.failures++
	s.mu.Unlock()
}

// Failures reports how many (symbol, indicator) pairs failed in the last run.
func (s *Screener) Failures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures
}
