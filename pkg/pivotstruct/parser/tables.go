package parser

import (
	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/models"
)

// BoundaryParams holds parameters for region boundary detection.
type BoundaryParams struct {
	// GapTolerance is how many consecutive blank rows or columns a table
	// may contain before it is considered finished. Zero ends the table at
	// the first blank line.
	GapTolerance int
}

// DefaultBoundaryParams returns default boundary detection parameters.
func DefaultBoundaryParams() BoundaryParams {
	return BoundaryParams{
		GapTolerance: 0,
	}
}

// Bound computes the table region that belongs to an anchor.
//
// The header row is the anchor row, or the row below it when that row has
// strictly more non-empty cells right of the anchor column. Rows end at the
// first blank row after the header row; columns end at the first column
// that is blank from the header row down to the last table row. Both scans
// only look at columns from the anchor column rightwards.
func Bound(g *models.Grid, anchor models.Anchor, params BoundaryParams) models.Region {
	lastCol := g.ColCount - 1
	headerRow := selectHeaderRow(g, anchor)

	endRow := scanEnd(headerRow+1, g.RowCount, params.GapTolerance, func(r int) bool {
		return countNonEmptyCells(g, r, r, anchor.Col, lastCol) == 0
	})

	endCol := scanEnd(anchor.Col, g.ColCount, params.GapTolerance, func(c int) bool {
		return countNonEmptyCells(g, headerRow, endRow-1, c, c) == 0
	})

	return models.Region{
		StartRow:  anchor.Row,
		EndRow:    endRow,
		StartCol:  anchor.Col,
		EndCol:    endCol,
		HeaderRow: headerRow,
	}
}

// selectHeaderRow picks between the anchor row and the row beneath it.
// Ties go to the anchor row.
func selectHeaderRow(g *models.Grid, anchor models.Anchor) int {
	below := anchor.Row + 1
	if below >= g.RowCount {
		return anchor.Row
	}
	lastCol := g.ColCount - 1
	if countNonEmptyCells(g, below, below, anchor.Col, lastCol) >
		countNonEmptyCells(g, anchor.Row, anchor.Row, anchor.Col, lastCol) {
		return below
	}
	return anchor.Row
}

// scanEnd walks indexes from..limit-1 and returns the first index of the
// first run of blank lines longer than tolerance. Blank lines that run into
// the limit are trimmed as well. Without such a run it returns limit.
func scanEnd(from, limit, tolerance int, blank func(int) bool) int {
	runStart, run := limit, 0
	for i := from; i < limit; i++ {
		if !blank(i) {
			run = 0
			continue
		}
		if run == 0 {
			runStart = i
		}
		run++
		if run > tolerance {
			return runStart
		}
	}
	if run > 0 {
		return runStart
	}
	return limit
}

// countNonEmptyCells counts non-blank cells within inclusive bounds.
func countNonEmptyCells(g *models.Grid, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < g.RowCount; rowIdx++ {
		if rowIdx < 0 {
			continue
		}
		row := g.Rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if colIdx >= 0 && !models.IsBlank(row[colIdx]) {
				count++
			}
		}
	}
	return count
}
