package screener

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/tidesurf/screener/pkg/types"
)

// RenderSummary writes the run's signal records as a table, one row per
// record in append order.
func RenderSummary(w io.Writer, records []types.SignalRecord) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Datetime", "Symbol", "Signal"})

	for _, r := range records {
		tw.AppendRow(table.Row{
			r.Time.Format("2006-01-02 15:04:05"),
			r.Symbol,
			string(r.SignalType),
		})
	}

	tw.Render()
}
