package pivotstruct

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/models"
	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/parser"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// ExtractFile extracts the requested pivots from an Excel file.
func ExtractFile(ctx context.Context, path string, opts Options) (*models.WorkbookPivots, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return extractWorkbook(ctx, f, filepath.Base(path), opts)
}

// ExtractReader extracts the requested pivots from a workbook read from r.
// bookName is reported as the workbook name.
func ExtractReader(ctx context.Context, r io.Reader, bookName string, opts Options) (*models.WorkbookPivots, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return extractWorkbook(ctx, f, bookName, opts)
}

// SheetNames lists the sheets of an Excel file in workbook order.
func SheetNames(path string) ([]string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

func extractWorkbook(ctx context.Context, f *excelize.File, bookName string, opts Options) (*models.WorkbookPivots, error) {
	if len(opts.Headings) == 0 {
		return nil, ErrNoHeadings
	}

	sheetName, err := resolveSheet(f, opts.Sheet, opts.logger())
	if err != nil {
		return nil, err
	}

	grid, err := parser.LoadGrid(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	opts.logger().Debug("Loaded sheet",
		slog.String("book", bookName),
		slog.String("sheet", sheetName),
		slog.Int("rows", grid.RowCount),
		slog.Int("cols", grid.ColCount))

	pivots, err := ExtractGrid(ctx, grid, opts)
	if err != nil {
		return nil, err
	}

	return &models.WorkbookPivots{
		BookName:  bookName,
		SheetName: sheetName,
		Pivots:    pivots,
	}, nil
}

// resolveSheet returns the requested sheet, or the first sheet when the
// request is empty or names a sheet the workbook does not have.
func resolveSheet(f *excelize.File, requested string, logger *slog.Logger) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrSheetNotFound
	}
	if requested == "" {
		return sheets[0], nil
	}
	for _, name := range sheets {
		if name == requested {
			return name, nil
		}
	}
	logger.Warn("Sheet not found, using first sheet",
		slog.String("requested", requested),
		slog.String("sheet", sheets[0]))
	return sheets[0], nil
}

// ExtractGrid extracts every requested heading from grid.
// It returns one result per heading in request order. Headings that cannot
// be extracted carry an *ExtractionError; they never abort the batch.
// The only errors returned are ErrNoHeadings and context cancellation.
func ExtractGrid(ctx context.Context, grid *models.Grid, opts Options) ([]models.PivotResult, error) {
	if len(opts.Headings) == 0 {
		return nil, ErrNoHeadings
	}

	results := make([]models.PivotResult, len(opts.Headings))

	if !opts.parallel() {
		for i, heading := range opts.Headings {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = extractResult(grid, heading, opts)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, heading := range opts.Headings {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = extractResult(grid, heading, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func extractResult(grid *models.Grid, heading string, opts Options) models.PivotResult {
	logger := opts.logger().With(slog.String("heading", heading))

	table, err := ExtractHeading(grid, heading, opts.Boundary)
	if err != nil {
		if errors.Is(err, ErrHeadingNotFound) {
			logger.Warn("Heading not found in sheet")
		} else {
			logger.Error("Failed to extract pivot", slog.String("error", err.Error()))
		}
		return models.PivotResult{Heading: heading, Err: err, Error: err.Error()}
	}

	logger.Debug("Extracted pivot",
		slog.String("ref", table.Ref),
		slog.Int("header_row", table.Region.HeaderRow),
		slog.Int("rows", table.Region.Rows()),
		slog.Int("cols", table.Region.Cols()))
	return models.PivotResult{Heading: heading, Table: table}
}

// ExtractHeading locates one heading, bounds its table and slices it out.
func ExtractHeading(grid *models.Grid, heading string, params parser.BoundaryParams) (*models.ExtractedTable, error) {
	anchor, ok := parser.Locate(grid, heading)
	if !ok {
		return nil, NewExtractionError(heading, ComponentLocate, ErrHeadingNotFound)
	}

	region := parser.Bound(grid, anchor, params)
	table, err := parser.Slice(grid, region, heading)
	if err != nil {
		return nil, NewExtractionError(heading, ComponentExtract, err)
	}
	return table, nil
}
