package cmd

import (
	"context"
	"fmt"

	"sheetsync/core/config"
	"sheetsync/core/logger"
	"sheetsync/core/storage"
	"sheetsync/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the export command
	exportWorkbook string
	exportOut      string
	exportObject   string

	// Flags for the import command
	importWorkbook string
	importDump     string
)

// exportCmd dumps a workbook's values and formulas to JSON.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a workbook's values and formulas to a JSON dump",
	Long: `Export captures every sheet's non-empty cells, recording formulas
separately from plain values, and writes the result as a JSON dump.
With --object the dump is also archived in object storage.

Examples:
  # Dump to a local file
  sheetsync export --workbook tracker.xlsx --out dump.json

  # Dump and archive in object storage
  sheetsync export --workbook tracker.xlsx --out dump.json --object dumps/tracker.json`,
	RunE: runExport,
}

// importCmd restores a workbook from a JSON dump.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Restore a workbook from a JSON dump",
	Long: `Import applies a JSON dump onto a workbook, creating missing sheets
and restoring formula cells as formulas.

Example:
  sheetsync import --workbook restored.xlsx --dump dump.json`,
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVar(&exportWorkbook, "workbook", "", "Workbook path (defaults to the configured workbook)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output JSON path (required)")
	exportCmd.Flags().StringVar(&exportObject, "object", "", "Object name for storage archiving (optional)")
	_ = exportCmd.MarkFlagRequired("out")

	importCmd.Flags().StringVar(&importWorkbook, "workbook", "", "Workbook path to restore onto (required)")
	importCmd.Flags().StringVar(&importDump, "dump", "", "Dump JSON path (required)")
	_ = importCmd.MarkFlagRequired("workbook")
	_ = importCmd.MarkFlagRequired("dump")

	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	workbookPath := exportWorkbook
	if workbookPath == "" {
		workbookPath = cfg.Sync.Workbook
	}

	// Storage is only needed when archiving.
	var store storage.Client
	if exportObject != "" {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	service := export.NewService(l, store, cfg.Storage.Bucket)

	dump, err := service.ExportWorkbook(workbookPath)
	if err != nil {
		return err
	}
	if err := service.WriteFile(dump, exportOut); err != nil {
		return err
	}

	if exportObject != "" {
		if err := service.Upload(context.Background(), dump, exportObject); err != nil {
			return err
		}
	}

	l.Info("Export written",
		zap.String("out", exportOut),
		zap.Int("sheets", len(dump.Sheets)),
		zap.Int("cells", dump.CellCount()),
	)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	service := export.NewService(l, nil, "")

	dump, err := service.ReadFile(importDump)
	if err != nil {
		return err
	}
	return service.ImportDump(importWorkbook, dump)
}
