package parser

import (
	"strings"

	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/models"
	"golang.org/x/text/unicode/norm"
)

// Locate returns the first text cell, in row-major order, whose trimmed
// lower-cased value contains the trimmed lower-cased heading.
// Numbers, booleans and dates are never matched.
func Locate(g *models.Grid, heading string) (models.Anchor, bool) {
	needle := normalizeText(heading)
	if needle == "" {
		return models.Anchor{}, false
	}

	for r := 0; r < g.RowCount; r++ {
		for c := 0; c < g.ColCount; c++ {
			s, ok := g.Rows[r][c].(string)
			if !ok {
				continue
			}
			if strings.Contains(normalizeText(s), needle) {
				return models.Anchor{Row: r, Col: c}, true
			}
		}
	}
	return models.Anchor{}, false
}

// normalizeText folds s to NFC, trims it and lower-cases it.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}
