package models

// Anchor is the cell where a heading was found (0-based).
type Anchor struct {
	// Row is the anchor row index.
	Row int `json:"row"`
	// Col is the anchor column index.
	Col int `json:"col"`
}

// Region is the bounding box of one pivot table within a Grid.
// End bounds are exclusive and all indexes are 0-based.
type Region struct {
	// StartRow is the anchor row.
	StartRow int `json:"start_row"`
	// EndRow is one past the last table row.
	EndRow int `json:"end_row"`
	// StartCol is the anchor column.
	StartCol int `json:"start_col"`
	// EndCol is one past the last table column.
	EndCol int `json:"end_col"`
	// HeaderRow is the row holding the column headers.
	HeaderRow int `json:"header_row"`
}

// Rows returns the number of rows covered by the region.
func (r Region) Rows() int {
	return r.EndRow - r.StartRow
}

// Cols returns the number of columns covered by the region.
func (r Region) Cols() int {
	return r.EndCol - r.StartCol
}

// Valid reports whether the region is non-empty, contains its header row
// and lies inside a grid of the given size.
func (r Region) Valid(rowCount, colCount int) bool {
	return r.StartRow >= 0 && r.StartCol >= 0 &&
		r.StartRow < r.EndRow && r.StartCol < r.EndCol &&
		r.StartRow <= r.HeaderRow && r.HeaderRow < r.EndRow &&
		r.EndRow <= rowCount && r.EndCol <= colCount
}
