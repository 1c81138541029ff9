// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/models"
)

// ToJSON serializes the pivots of a workbook.
func ToJSON(wb *models.WorkbookPivots, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// TableToJSON serializes a single extracted table.
func TableToJSON(t *models.ExtractedTable, pretty bool) ([]byte, error) {
	return marshal(t, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
