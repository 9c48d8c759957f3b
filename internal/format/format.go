// Package format renders the CLI's tabular output (figure listings, render
// summaries) through go-pretty, as plain terminal tables or Markdown.
package format

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode selects the table rendering.
type Mode int

const (
	Terminal Mode = iota // box-drawing terminal tables
	Markdown             // pipe-delimited Markdown tables
)

// Table accumulates rows and renders once via String.
type Table struct {
	w    table.Writer
	mode Mode
}

// NewTable returns an empty table rendering in the given mode.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	if m == Terminal {
		w.SetStyle(table.StyleLight)
	}
	return &Table{w: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.w.AppendHeader(row)
}

// Row appends a data row; values render via fmt.
func (t *Table) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.w.AppendRow(row)
}

// Footer appends a summary row.
func (t *Table) Footer(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.w.AppendFooter(row)
}

// RightAlign right-aligns the given 1-based columns.
func (t *Table) RightAlign(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, n := range cols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight, AlignFooter: text.AlignRight}
	}
	t.w.SetColumnConfigs(cfgs)
}

// String renders the table in the configured mode.
func (t *Table) String() string {
	if t.mode == Markdown {
		return t.w.RenderMarkdown()
	}
	return t.w.Render()
}

// FmtBytes formats a byte count with a KiB/MiB suffix for readability.
func FmtBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
