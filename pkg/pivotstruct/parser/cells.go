package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/models"
	"github.com/xuri/excelize/v2"
)

// LoadGrid reads a sheet into a rectangular Grid of typed cell values.
// Strings stay strings, numbers become int64 or float64, booleans become
// bool and date-formatted numbers become time.Time.
func LoadGrid(f *excelize.File, sheetName string) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	values := make([][]interface{}, len(rows))
	for rowIdx, row := range rows {
		rowValues := make([]interface{}, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				rowValues[colIdx] = parseValue(raw)
				continue
			}
			rowValues[colIdx] = typedValue(f, sheetName, cellName, raw, date1904)
		}
		values[rowIdx] = rowValues
	}

	return models.NewGrid(values), nil
}

// typedValue converts a raw cell string using the cell's stored type.
func typedValue(f *excelize.File, sheetName, cellName, raw string, date1904 bool) interface{} {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return parseValue(raw)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		// Text, string formula results and error literals are kept verbatim.
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
		return raw
	}

	v := parseValue(raw)
	if serial, ok := toFloat(v); ok && isDateCell(f, sheetName, cellName) {
		if t, err := excelize.ExcelDateToTime(serial, date1904); err == nil {
			return t
		}
	}
	return v
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// isDateCell reports whether the cell's number format renders a date.
func isDateCell(f *excelize.File, sheetName, cellName string) bool {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormat(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

// isBuiltInDateFormat covers the built-in date and date-time formats
// (14-22) and the CJK date formats (27-36, 50-58).
func isBuiltInDateFormat(numFmt int) bool {
	switch {
	case numFmt >= 14 && numFmt <= 22:
		return true
	case numFmt >= 27 && numFmt <= 36:
		return true
	case numFmt >= 50 && numFmt <= 58:
		return true
	}
	return false
}

// isDateFormat reports whether a custom format code contains a year or day
// token outside quoted literals and bracketed sections.
func isDateFormat(code string) bool {
	inQuote, inBracket := false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		case r == 'y' || r == 'd':
			return true
		}
	}
	return false
}
