package cmd

import (
	"context"
	"errors"
	"fmt"

	"sheetsync/core/config"
	"sheetsync/core/database"
	"sheetsync/core/history"
	"sheetsync/core/lock"
	"sheetsync/core/logger"
	syncfeature "sheetsync/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncWorkbook string
	syncOrigin   string
	syncDryRun   bool
)

// syncCmd reconciles the synchronized sheet set against an origin sheet.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync checkbox states from an origin sheet to its siblings",
	Long: `Sync snapshots the origin sheet's checkbox and name columns, then brings
every other configured sheet into agreement with it. Formula-driven cells
are never written, and contiguous changes are applied as single batches.

Examples:
  # Sync from the Overview sheet
  sheetsync sync --origin Overview

  # Report what would change without writing
  sheetsync sync --origin Overview --dry-run

  # Sync a specific workbook file
  sheetsync sync --origin Overview --workbook ./tracker.xlsx`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncWorkbook, "workbook", "", "Workbook path (defaults to the configured workbook)")
	syncCmd.Flags().StringVar(&syncOrigin, "origin", "", "Origin sheet name (required)")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Report changes without writing the workbook")
	_ = syncCmd.MarkFlagRequired("origin")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	workbookPath := syncWorkbook
	if workbookPath == "" {
		workbookPath = cfg.Sync.Workbook
	}

	var locker lock.Locker
	if cfg.Sync.RedisURL != "" {
		rl, err := lock.NewRedisLocker(cfg.Sync.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis lock backend: %w", err)
		}
		defer rl.Close()
		locker = rl
	} else {
		locker = lock.NewMemoryLocker()
	}

	// History is optional for CLI runs.
	var hist *history.Store
	if db, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Optional database connection failed", zap.Error(err))
	} else if hist, err = history.NewStore(db); err != nil {
		l.Warn("Failed to initialize history store", zap.Error(err))
		hist = nil
	}

	service := syncfeature.NewService(cfg.Sync, l, locker, hist)

	report, err := service.SyncWorkbook(ctx, workbookPath, syncOrigin, syncfeature.Options{DryRun: syncDryRun})
	if err != nil {
		if errors.Is(err, syncfeature.ErrSyncInProgress) {
			return fmt.Errorf("workbook %q is locked by another sync", workbookPath)
		}
		return err
	}

	printSyncReport(l, report)
	return nil
}

// printSyncReport prints a formatted per-target report using logger.
func printSyncReport(l *zap.Logger, report *syncfeature.Report) {
	l.Info("Sync report",
		zap.String("workbook", report.Workbook),
		zap.String("origin", report.OriginSheet),
		zap.Int("targets", len(report.Targets)),
		zap.Int("updates", report.TotalUpdates),
		zap.Int("batches", report.TotalBatches),
		zap.Bool("dry_run", report.DryRun),
	)

	for _, target := range report.Targets {
		l.Info("Target sheet",
			zap.String("sheet", target.Sheet),
			zap.Int("updates", target.Updates),
			zap.Int("batches", target.Batches),
		)
	}
}
