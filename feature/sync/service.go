package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sheetsync/core/history"
	"sheetsync/core/lock"
	"sheetsync/core/reconcile"
	"sheetsync/core/workbook"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrSyncInProgress is returned when another sync currently holds the lock
// for the same workbook.
var ErrSyncInProgress = errors.New("a sync is already in progress for this workbook")

// Service drives reconciliation runs: it owns snapshot acquisition, lock
// handling, batch application and history recording. The diff itself lives
// in core/reconcile and stays pure.
type Service struct {
	cfg     Config
	logger  *zap.Logger
	locker  lock.Locker
	history *history.Store // nil disables history

	sf singleflight.Group
}

// NewService creates a sync service. history may be nil.
func NewService(cfg Config, logger *zap.Logger, locker lock.Locker, hist *history.Store) *Service {
	return &Service{
		cfg:     cfg,
		logger:  logger,
		locker:  locker,
		history: hist,
	}
}

// SyncWorkbook reconciles every configured target sheet against the origin
// sheet and applies the resulting batches. Concurrent calls for the same
// workbook and origin collapse into one run; calls racing a different
// origin fail with ErrSyncInProgress rather than interleaving writes.
func (s *Service) SyncWorkbook(ctx context.Context, path, origin string, opts Options) (*Report, error) {
	key := path + "|" + origin
	result, err, _ := s.sf.Do(key, func() (any, error) {
		return s.syncLocked(ctx, path, origin, opts)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Report), nil
}

func (s *Service) syncLocked(ctx context.Context, path, origin string, opts Options) (*Report, error) {
	ttl := time.Duration(s.cfg.LockTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}

	ok, err := s.locker.Acquire(ctx, path, ttl)
	if err != nil {
		return nil, fmt.Errorf("acquire sync lock: %w", err)
	}
	if !ok {
		return nil, ErrSyncInProgress
	}
	defer func() {
		_ = s.locker.Release(ctx, path)
	}()

	started := time.Now()

	sheets := s.cfg.SheetList()
	if !containsSheet(sheets, origin) {
		return nil, fmt.Errorf("origin sheet %q is not in the configured sheet set %v", origin, sheets)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()

	report, err := s.reconcileAll(f, sheets, origin, opts)
	if err != nil {
		return nil, err
	}
	report.Workbook = path

	if !opts.DryRun && report.TotalUpdates > 0 {
		if err := f.Save(); err != nil {
			return nil, fmt.Errorf("save workbook %q: %w", path, err)
		}
	}

	s.logger.Info("Sync completed",
		zap.String("workbook", path),
		zap.String("origin", origin),
		zap.Int("targets", len(report.Targets)),
		zap.Int("updates", report.TotalUpdates),
		zap.Int("batches", report.TotalBatches),
		zap.Bool("dry_run", opts.DryRun),
	)

	if s.history != nil && !opts.DryRun {
		run := &history.Run{
			Workbook:     path,
			OriginSheet:  origin,
			TargetSheets: len(report.Targets),
			Updates:      report.TotalUpdates,
			Batches:      report.TotalBatches,
			StartedAt:    started,
			DurationMS:   time.Since(started).Milliseconds(),
		}
		if err := s.history.Record(ctx, run); err != nil {
			// History is best-effort; a failed insert must not fail the sync.
			s.logger.Warn("Failed to record sync run", zap.Error(err))
		}
	}

	return report, nil
}

// reconcileAll snapshots the origin once and brings every other configured
// sheet into agreement with it.
func (s *Service) reconcileAll(f *excelize.File, sheets []string, origin string, opts Options) (*Report, error) {
	cols := s.cfg.Columns()

	sourceRows, err := workbook.ReadSource(f, origin, cols)
	if err != nil {
		return nil, fmt.Errorf("snapshot origin sheet: %w", err)
	}
	src := reconcile.BuildSourceMap(sourceRows)

	report := &Report{OriginSheet: origin, DryRun: opts.DryRun}

	for _, sheet := range sheets {
		if sheet == origin {
			continue
		}

		targetRows, err := workbook.ReadTarget(f, sheet, cols)
		if err != nil {
			return nil, fmt.Errorf("snapshot target sheet %q: %w", sheet, err)
		}

		updates := reconcile.DiffTarget(src, targetRows, cols.FirstRow)
		batches := reconcile.GroupBatches(updates)

		if !opts.DryRun {
			if err := workbook.ApplyBatches(f, sheet, cols.State, batches); err != nil {
				return nil, fmt.Errorf("apply batches to sheet %q: %w", sheet, err)
			}
		}

		report.Targets = append(report.Targets, TargetReport{
			Sheet:   sheet,
			Updates: len(updates),
			Batches: len(batches),
		})
		report.TotalUpdates += len(updates)
		report.TotalBatches += len(batches)
	}

	return report, nil
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
