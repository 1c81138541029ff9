package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/models"
)

func sampleTable() *models.ExtractedTable {
	return &models.ExtractedTable{
		Heading:     "Another Pivot Table",
		Ref:         "A1:B3",
		Region:      models.Region{StartRow: 0, EndRow: 3, StartCol: 0, EndCol: 2, HeaderRow: 1},
		HeaderIndex: 1,
		Rows: [][]interface{}{
			{"Another Pivot Table", ""},
			{"Project", "Total Points"},
			{"Project A, Phase 1", int64(8)},
		},
	}
}

func TestToJSON(t *testing.T) {
	wb := &models.WorkbookPivots{
		BookName:  "report.xlsx",
		SheetName: "Pivot Sheets",
		Pivots: []models.PivotResult{
			{Heading: "Another Pivot Table", Table: sampleTable()},
			{Heading: "Missing", Err: errors.New("heading not found"), Error: "heading not found"},
		},
	}

	data, err := ToJSON(wb, false)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "report.xlsx", decoded["book_name"])

	pivots := decoded["pivots"].([]interface{})
	require.Len(t, pivots, 2)
	first := pivots[0].(map[string]interface{})
	assert.Equal(t, "Another Pivot Table", first["heading"])
	assert.NotContains(t, first, "error")
	table := first["table"].(map[string]interface{})
	assert.Equal(t, "A1:B3", table["ref"])

	second := pivots[1].(map[string]interface{})
	assert.Equal(t, "heading not found", second["error"])
	assert.NotContains(t, second, "table")

	pretty, err := ToJSON(wb, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"book_name\"")
}

func TestTableToJSON(t *testing.T) {
	data, err := TableToJSON(sampleTable(), false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"header_index":1`)
	assert.Contains(t, string(data), `["Project","Total Points"]`)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))

	expected := "Another Pivot Table,\nProject,Total Points\n\"Project A, Phase 1\",8\n"
	assert.Equal(t, expected, buf.String())
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
	}{
		{nil, ""},
		{"text", "text"},
		{int64(-3), "-3"},
		{2.5, "2.5"},
		{100.0, "100"},
		{true, "true"},
		{time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), "2026-03-15"},
		{time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC), "2026-03-15 09:30:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCell(tt.value), "FormatCell(%#v)", tt.value)
	}
}

func TestCSVFileName(t *testing.T) {
	tests := []struct {
		index    int
		heading  string
		expected string
	}{
		{0, "Status Summary Pivot", "01_status_summary_pivot.csv"},
		{9, "  Q1/Q2 -- Totals! ", "10_q1_q2_totals.csv"},
		{2, "***", "03_pivot.csv"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CSVFileName(tt.index, tt.heading), "CSVFileName(%d, %q)", tt.index, tt.heading)
	}
}
