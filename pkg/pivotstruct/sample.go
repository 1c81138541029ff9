package pivotstruct

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet names used by the sample workbook.
const (
	SampleRawSheet   = "Raw Data"
	SamplePivotSheet = "Pivot Sheets"
)

// SamplePivotOrder is the heading order that matches the sample workbook.
var SamplePivotOrder = []string{"Status Summary Pivot", "Another Pivot Table"}

// sampleRawRows is a small issue export with a header row.
var sampleRawRows = [][]interface{}{
	{"Project", "Status", "Assignee", "Story Points"},
	{"Project A", "Done", "Alice", 5},
	{"Project A", "In Progress", "Bob", 3},
	{"Project B", "Done", "Charlie", 8},
	{"Project B", "To Do", "Alice", 2},
	{"Project C", "Done", "Bob", 5},
}

// samplePivotRows mimics a pivot report exported from an issue tracker:
// a report title, then two titled pivots separated by a blank row.
var samplePivotRows = [][]interface{}{
	{nil, nil, nil, nil},
	{"JIRA Issue Report - March 2026", nil, nil, nil},
	{nil, nil, nil, nil},
	{"Status Summary Pivot", nil, nil, nil},
	{"Assignee", "Done", "In Progress", "To Do"},
	{"Alice", 5, 0, 2},
	{"Bob", 5, 3, 0},
	{"Charlie", 8, 0, 0},
	{"Grand Total", 18, 3, 2},
	{nil, nil, nil, nil},
	{"Another Pivot Table", nil, nil, nil},
	{"Project", "Total Points", nil, nil},
	{"Project A", 8, nil, nil},
	{"Project B", 10, nil, nil},
	{"Project C", 5, nil, nil},
}

// SampleWorkbook builds the demo workbook in memory.
// The caller must close the returned file.
func SampleWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SampleRawSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SamplePivotSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeRows(f, SampleRawSheet, sampleRawRows); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRows(f, SamplePivotSheet, samplePivotRows); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteSample saves the demo workbook to path.
func WriteSample(path string) error {
	f, err := SampleWorkbook()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save sample workbook: %w", err)
	}
	return nil
}

// writeRows writes non-nil values cell by cell so blanks stay missing.
func writeRows(f *excelize.File, sheetName string, rows [][]interface{}) error {
	for rowIdx, row := range rows {
		for colIdx, v := range row {
			if v == nil {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cellName, v); err != nil {
				return err
			}
		}
	}
	return nil
}
