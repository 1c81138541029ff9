package models

import "fmt"

// ExtractedTable is a materialized copy of one Region.
// Missing cells are stored as "" so every cell is a scalar.
type ExtractedTable struct {
	// Heading is the requested heading text.
	Heading string `json:"heading"`
	// Ref is the A1-style range of the region (e.g. "A4:D9").
	Ref string `json:"ref"`
	// Region is the source bounding box.
	Region Region `json:"region"`
	// HeaderIndex is the index within Rows of the header row.
	HeaderIndex int `json:"header_index"`
	// Rows holds the sliced cells, starting with the anchor row.
	Rows [][]interface{} `json:"rows"`
}

// Columns returns the header row rendered as strings.
func (t *ExtractedTable) Columns() []string {
	if t.HeaderIndex < 0 || t.HeaderIndex >= len(t.Rows) {
		return nil
	}
	header := t.Rows[t.HeaderIndex]
	cols := make([]string, len(header))
	for i, v := range header {
		cols[i] = fmt.Sprint(v)
	}
	return cols
}

// DataRows returns the rows below the header row.
func (t *ExtractedTable) DataRows() [][]interface{} {
	if t.HeaderIndex+1 >= len(t.Rows) {
		return nil
	}
	return t.Rows[t.HeaderIndex+1:]
}
