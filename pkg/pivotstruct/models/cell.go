// Package models defines data structures for pivot table extraction.
package models

import "strings"

// Grid is a rectangular snapshot of one sheet's cell values.
// Cells hold nil (missing), string, int64, float64, bool or time.Time.
// A Grid is never modified once built.
type Grid struct {
	// Rows holds RowCount rows of exactly ColCount cells each (0-based).
	Rows [][]interface{} `json:"rows"`
	// RowCount is the number of rows.
	RowCount int `json:"row_count"`
	// ColCount is the number of columns.
	ColCount int `json:"col_count"`
}

// NewGrid builds a Grid from ragged rows, padding short rows with nil.
// The input slices are copied.
func NewGrid(rows [][]interface{}) *Grid {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	g := &Grid{
		Rows:     make([][]interface{}, len(rows)),
		RowCount: len(rows),
		ColCount: cols,
	}
	for r, row := range rows {
		padded := make([]interface{}, cols)
		copy(padded, row)
		g.Rows[r] = padded
	}
	return g
}

// At returns the value at (row, col), or nil outside the grid.
func (g *Grid) At(row, col int) interface{} {
	if row < 0 || row >= g.RowCount || col < 0 || col >= g.ColCount {
		return nil
	}
	return g.Rows[row][col]
}

// IsBlank reports whether v is missing or a whitespace-only string.
func IsBlank(v interface{}) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(s) == ""
	}
	return false
}
