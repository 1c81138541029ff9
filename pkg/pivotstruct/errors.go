package pivotstruct

import (
	"errors"
	"fmt"

	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no usable sheet.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoHeadings indicates that no headings were requested.
var ErrNoHeadings = errors.New("no headings requested")

// ErrHeadingNotFound indicates that no text cell contains the heading.
var ErrHeadingNotFound = errors.New("heading not found")

// ErrInvalidRegion indicates boundary detection produced a degenerate region.
var ErrInvalidRegion = parser.ErrInvalidRegion

// Components reported by ExtractionError.
const (
	ComponentLocate  = "locate"
	ComponentExtract = "extract"
)

// ExtractionError represents a failure to extract one heading.
type ExtractionError struct {
	Heading   string
	Component string // "locate", "extract"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error for heading %q (%s): %v", e.Heading, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(heading, component string, err error) *ExtractionError {
	return &ExtractionError{
		Heading:   heading,
		Component: component,
		Err:       err,
	}
}
