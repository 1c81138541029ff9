// Package pivotstruct extracts heading-anchored pivot tables from spreadsheets.
package pivotstruct

import (
	"log/slog"

	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/parser"
)

// Options configures extraction behavior.
type Options struct {
	// Sheet is the sheet to read. If empty or missing from the workbook,
	// the first sheet is used.
	Sheet string
	// Headings lists the pivot headings to extract, in output order.
	Headings []string
	// Boundary controls where a table is considered to end.
	Boundary parser.BoundaryParams
	// Workers is the number of headings processed concurrently.
	// Values below 2 process headings sequentially.
	Workers int
	// Logger receives per-heading diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Boundary: parser.DefaultBoundaryParams(),
		Workers:  1,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) parallel() bool {
	return o.Workers > 1
}
