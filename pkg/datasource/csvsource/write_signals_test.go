package csvsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidesurf/screener/pkg/types"
)

func TestWriteSignals_AppendSemantics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.csv")

	records := []types.SignalRecord{
		{
			Time:       time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC),
			Symbol:     "ACME",
			SignalType: types.SignalTypeMACD,
		},
		{
			Time:       time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Symbol:     "GLOBEX",
			SignalType: types.SignalTypeRSI,
		},
	}

	// first write creates the file with a header
	require.NoError(t, WriteSignals(path, records))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Datetime,symbol,signal type", lines[0])
	assert.Equal(t, "2024-02-08 00:00:00,ACME,MACD", lines[1])
	assert.Equal(t, "2024-01-20 00:00:00,GLOBEX,RSI", lines[2])

	// the second write appends without a header and without deduplication
	require.NoError(t, WriteSignals(path, records))

	content, err = os.ReadFile(path)
	require.NoError(t, err)

	lines = strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, lines[1], lines[3])
	assert.Equal(t, lines[2], lines[4])

	headers := 0
	for _, line := range lines {
		if line == "Datetime,symbol,signal type" {
			headers++
		}
	}
	assert.Equal(t, 1, headers)
}

func TestWriteSignals_EmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.csv")
	require.NoError(t, WriteSignals(path, nil))

	// an empty batch still creates the file with its header
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Datetime,symbol,signal type\n", string(content))
}

func TestWriteSignals_UnwritableDestination(t *testing.T) {
	err := WriteSignals(filepath.Join(t.TempDir(), "no", "such", "dir", "signals.csv"), nil)
	assert.Error(t, err)
}
