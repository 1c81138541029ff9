// Package main provides the CLI entry point for pivotstruct.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/pivotstruct-go/internal/config"
	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct"
	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/models"
	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/output"
	"github.com/ukaji3/pivotstruct-go/pkg/pivotstruct/parser"
)

var (
	configPath string
	envFile    string
	outputPath string
	csvDir     string
	pretty     bool
	strict     bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pivotstruct",
		Short: "Extract titled pivot tables from Excel sheets",
		Long: `pivotstruct finds pivot tables inside an unstructured Excel sheet by
their heading text and outputs each table as JSON or CSV.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./config.json if present)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Dotenv file with PIVOTSTRUCT_* overrides (skipped if missing)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newExtractCmd(), newSheetsCmd(), newSampleCmd())
	return rootCmd
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract pivot tables by heading",
		Long: `Extract the pivot tables named by --heading (or pivot_order in the config
file) from one sheet. The input defaults to excel_file from the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().String("sheet", "", "Sheet name (default: first sheet)")
	cmd.Flags().StringArray("heading", nil, "Pivot heading to extract (repeatable, in output order; commas are kept)")
	cmd.Flags().Int("gap-tolerance", 0, "Blank rows/columns tolerated inside a table")
	cmd.Flags().Int("workers", config.DefaultWorkers, "Headings processed concurrently")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&csvDir, "csv-dir", "", "Directory for per-pivot CSV files")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail if any heading cannot be extracted")
	return cmd
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			inputPath, err := resolveInput(cfg, args)
			if err != nil {
				return err
			}

			names, err := pivotstruct.SheetNames(inputPath)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample [output.xlsx]",
		Short: "Write a demo workbook with two pivot tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "sample_jira_report.xlsx"
			if len(args) == 1 {
				path = args[0]
			}
			if err := pivotstruct.WriteSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sample Excel file created at: %s\n", path)
			return nil
		},
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, nil, err
	}

	// Flags() includes the root's persistent flags once cobra has parsed them.
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func resolveInput(cfg *config.Config, args []string) (string, error) {
	inputPath := cfg.ExcelFile
	if len(args) == 1 {
		inputPath = args[0]
	}
	if inputPath == "" {
		return "", fmt.Errorf("no input file: pass one or set excel_file in %s", config.DefaultConfigFile)
	}

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", inputPath)
	}
	return inputPath, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	inputPath, err := resolveInput(cfg, args)
	if err != nil {
		return err
	}

	opts := pivotstruct.Options{
		Sheet:    cfg.SheetName,
		Headings: cfg.PivotOrder,
		Boundary: parser.BoundaryParams{GapTolerance: cfg.GapTolerance},
		Workers:  cfg.Workers,
		Logger:   logger,
	}

	// Extract data
	wb, err := pivotstruct.ExtractFile(cmd.Context(), inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Info("Extraction finished",
		slog.String("book", wb.BookName),
		slog.String("sheet", wb.SheetName),
		slog.Int("requested", len(wb.Pivots)),
		slog.Int("found", wb.Found()))

	// Serialize to JSON
	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if csvDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	// Write per-pivot files
	if csvDir != "" {
		if err := writeCSVFiles(wb, csvDir); err != nil {
			return fmt.Errorf("failed to write csv files: %w", err)
		}
	}

	if strict && wb.Found() < len(wb.Pivots) {
		return fmt.Errorf("%d of %d headings could not be extracted", len(wb.Pivots)-wb.Found(), len(wb.Pivots))
	}
	return nil
}

func writeCSVFiles(wb *models.WorkbookPivots, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i, pivot := range wb.Pivots {
		if !pivot.OK() {
			continue
		}

		filename := filepath.Join(dir, output.CSVFileName(i, pivot.Heading))
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		if err := output.WriteCSV(f, pivot.Table); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
