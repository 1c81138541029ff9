package models

// PivotResult is the outcome for one requested heading.
// Exactly one of Table and Err is set.
type PivotResult struct {
	// Heading is the requested heading text.
	Heading string `json:"heading"`
	// Table is the extracted table on success.
	Table *ExtractedTable `json:"table,omitempty"`
	// Err is the failure reason (heading not found, invalid region).
	Err error `json:"-"`
	// Error is Err rendered for serialization.
	Error string `json:"error,omitempty"`
}

// OK reports whether the heading was extracted.
func (p PivotResult) OK() bool {
	return p.Err == nil && p.Table != nil
}

// WorkbookPivots holds the pivots extracted from one sheet of a workbook.
type WorkbookPivots struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the pivots were read from.
	SheetName string `json:"sheet_name"`
	// Pivots holds one result per requested heading, in request order.
	Pivots []PivotResult `json:"pivots"`
}

// Found returns the number of headings that were extracted.
func (w *WorkbookPivots) Found() int {
	n := 0
	for _, p := range w.Pivots {
		if p.OK() {
			n++
		}
	}
	return n
}
