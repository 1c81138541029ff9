package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidRegion indicates a region that is empty, inverted or outside
// the grid.
var ErrInvalidRegion = errors.New("invalid region")

// Slice copies the cells of region out of the grid.
// Missing and whitespace-only cells become "" in the result; the grid is not referenced
// afterwards.
func Slice(g *models.Grid, region models.Region, heading string) (*models.ExtractedTable, error) {
	if !region.Valid(g.RowCount, g.ColCount) {
		return nil, fmt.Errorf("%w: rows [%d,%d) cols [%d,%d) header %d in %dx%d grid",
			ErrInvalidRegion, region.StartRow, region.EndRow, region.StartCol, region.EndCol,
			region.HeaderRow, g.RowCount, g.ColCount)
	}

	rows := make([][]interface{}, 0, region.Rows())
	for r := region.StartRow; r < region.EndRow; r++ {
		row := make([]interface{}, region.Cols())
		for c := region.StartCol; c < region.EndCol; c++ {
			v := g.Rows[r][c]
			if models.IsBlank(v) {
				v = ""
			}
			row[c-region.StartCol] = v
		}
		rows = append(rows, row)
	}

	ref, err := RangeRef(region)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegion, err)
	}

	return &models.ExtractedTable{
		Heading:     heading,
		Ref:         ref,
		Region:      region,
		HeaderIndex: region.HeaderRow - region.StartRow,
		Rows:        rows,
	}, nil
}

// RangeRef renders a region in Excel range notation (e.g. "A4:D9").
func RangeRef(region models.Region) (string, error) {
	startCell, err := excelize.CoordinatesToCellName(region.StartCol+1, region.StartRow+1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(region.EndCol, region.EndRow)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}
