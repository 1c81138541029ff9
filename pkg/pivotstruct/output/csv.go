package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/models"
)

// WriteCSV writes every row of the table, title row included.
func WriteCSV(w io.Writer, t *models.ExtractedTable) error {
	cw := csv.NewWriter(w)
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = FormatCell(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatCell renders a cell value as text.
func FormatCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.DateTime)
	}
	return fmt.Sprint(v)
}

var unsafeName = regexp.MustCompile(`[^a-z0-9]+`)

// CSVFileName returns a file name for the index-th pivot (0-based).
func CSVFileName(index int, heading string) string {
	slug := strings.Trim(unsafeName.ReplaceAllString(strings.ToLower(heading), "_"), "_")
	if slug == "" {
		slug = "pivot"
	}
	return fmt.Sprintf("%02d_%s.csv", index+1, slug)
}
