package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Run is one recorded sync run.
type Run struct {
	// ID is the unique run identifier.
	ID string `gorm:"primaryKey" json:"id"`

	// Workbook is the path or name of the synced workbook.
	Workbook string `gorm:"index" json:"workbook"`

	// OriginSheet is the sheet treated as authoritative for the run.
	OriginSheet string `json:"origin_sheet"`

	// TargetSheets is the number of target sheets reconciled.
	TargetSheets int `json:"target_sheets"`

	// Updates is the total number of row updates applied.
	Updates int `json:"updates"`

	// Batches is the total number of bulk writes issued.
	Batches int `json:"batches"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// DurationMS is the run duration in milliseconds.
	DurationMS int64 `json:"duration_ms"`
}

// Store persists sync runs.
type Store struct {
	db *gorm.DB
}

// NewStore migrates the runs table and returns a store.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("migrate history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record saves one run. A missing ID is filled in with a fresh UUID.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("record sync run: %w", err)
	}
	return nil
}

// Recent returns the n most recent runs, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Run, error) {
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(n).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("load sync history: %w", err)
	}
	return runs, nil
}
