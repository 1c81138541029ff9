package parser

import (
	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/models"
)

// jiraGrid is a pivot report with a title row, a blank row, a titled pivot
// and a trailing blank row.
func jiraGrid() *models.Grid {
	return models.NewGrid([][]interface{}{
		{"", nil, nil, nil},
		{"JIRA Issue Report", nil, nil, nil},
		{nil, nil, nil, nil},
		{"Status Summary Pivot", nil, nil, nil},
		{"Assignee", "Done", "In Progress", "To Do"},
		{"Alice", int64(5), int64(0), int64(2)},
		{"Bob", int64(5), int64(3), int64(0)},
		{"Charlie", int64(8), int64(0), int64(0)},
		{"Grand Total", int64(18), int64(3), int64(2)},
		{"", nil, nil, nil},
	})
}

// twoPivotGrid holds two titled pivots separated by one blank row; the
// second runs to the last row of the grid.
func twoPivotGrid() *models.Grid {
	return models.NewGrid([][]interface{}{
		{"Status Summary Pivot", nil, nil, nil},
		{"Assignee", "Done", "In Progress", "To Do"},
		{"Alice", int64(5), int64(0), int64(2)},
		{"Grand Total", int64(5), int64(0), int64(2)},
		{nil, nil, nil, nil},
		{"Another Pivot Table", nil, nil, nil},
		{"Project", "Total Points", nil, nil},
		{"Project A", int64(8), nil, nil},
		{"Project B", int64(10), nil, nil},
	})
}
