package models

import (
	"testing"
	"time"
)

func TestNewGridPadsRows(t *testing.T) {
	src := [][]interface{}{
		{"a"},
		{"b", "c", "d"},
		nil,
	}
	g := NewGrid(src)

	if g.RowCount != 3 || g.ColCount != 3 {
		t.Fatalf("Expected 3x3 grid, got %dx%d", g.RowCount, g.ColCount)
	}
	for i, row := range g.Rows {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, expected 3", i, len(row))
		}
	}

	src[0][0] = "changed"
	if g.At(0, 0) != "a" {
		t.Errorf("Expected grid to copy its input, got %v", g.At(0, 0))
	}
	if g.At(-1, 0) != nil || g.At(0, 3) != nil || g.At(3, 0) != nil {
		t.Error("Expected nil outside the grid")
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected bool
	}{
		{nil, true},
		{"", true},
		{" \t", true},
		{"x", false},
		{int64(0), false},
		{0.0, false},
		{false, false},
		{time.Time{}, false},
	}

	for _, tt := range tests {
		if result := IsBlank(tt.value); result != tt.expected {
			t.Errorf("IsBlank(%#v) = %v, expected %v", tt.value, result, tt.expected)
		}
	}
}

func TestRegionValid(t *testing.T) {
	tests := []struct {
		name     string
		region   Region
		expected bool
	}{
		{"header at start", Region{StartRow: 0, EndRow: 3, StartCol: 0, EndCol: 2, HeaderRow: 0}, true},
		{"header below start", Region{StartRow: 1, EndRow: 3, StartCol: 1, EndCol: 4, HeaderRow: 2}, true},
		{"no columns", Region{StartRow: 0, EndRow: 3, StartCol: 2, EndCol: 2}, false},
		{"no rows", Region{StartRow: 3, EndRow: 3, StartCol: 0, EndCol: 2, HeaderRow: 3}, false},
		{"header above", Region{StartRow: 1, EndRow: 3, StartCol: 0, EndCol: 2, HeaderRow: 0}, false},
		{"too many rows", Region{StartRow: 0, EndRow: 6, StartCol: 0, EndCol: 2}, false},
		{"too many cols", Region{StartRow: 0, EndRow: 2, StartCol: 0, EndCol: 5}, false},
	}

	for _, tt := range tests {
		if result := tt.region.Valid(5, 4); result != tt.expected {
			t.Errorf("%s: Valid() = %v, expected %v", tt.name, result, tt.expected)
		}
	}
}

func TestExtractedTableColumns(t *testing.T) {
	table := &ExtractedTable{
		HeaderIndex: 1,
		Rows: [][]interface{}{
			{"Pivot", ""},
			{"Name", int64(2026)},
			{"a", int64(1)},
		},
	}

	cols := table.Columns()
	if len(cols) != 2 || cols[0] != "Name" || cols[1] != "2026" {
		t.Errorf("Columns() = %v", cols)
	}
	if data := table.DataRows(); len(data) != 1 || data[0][0] != "a" {
		t.Errorf("DataRows() = %v", data)
	}

	headerOnly := &ExtractedTable{Rows: [][]interface{}{{"Pivot"}}}
	if data := headerOnly.DataRows(); data != nil {
		t.Errorf("Expected no data rows, got %v", data)
	}
}
