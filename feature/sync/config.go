package sync

import (
	"strings"

	"sheetsync/core/workbook"
)

// Config holds configuration for the checkbox sync dispatcher.
type Config struct {
	// Workbook is the default workbook path when a request names none.
	Workbook string `mapstructure:"workbook" default:"tracker.xlsx"`
	// Sheets is the ordered, comma-separated list of sheet names in the
	// synchronized set. The set is always supplied by the operator, never
	// inferred from the workbook.
	Sheets string `mapstructure:"sheets" default:""`
	// StateColumn is the checkbox column letter.
	StateColumn string `mapstructure:"state_column" default:"B"`
	// NameColumn is the entry-name column letter.
	NameColumn string `mapstructure:"name_column" default:"C"`
	// FirstDataRow is the 1-based first data row, below the header.
	FirstDataRow int `mapstructure:"first_data_row" default:"2"`
	// LockTTLSeconds is how long a sync lock lives before expiring on its
	// own if the holder dies mid-run.
	LockTTLSeconds int `mapstructure:"lock_ttl_seconds" default:"60"`
	// RedisURL enables the Redis lock backend when non-empty.
	RedisURL string `mapstructure:"redis_url" default:""`
}

// SheetList parses the configured sheet names, preserving order and
// dropping blanks.
func (c Config) SheetList() []string {
	var sheets []string
	for _, s := range strings.Split(c.Sheets, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			sheets = append(sheets, s)
		}
	}
	return sheets
}

// Columns returns the snapshot column layout shared by every sheet in the
// synchronized set.
func (c Config) Columns() workbook.Columns {
	return workbook.Columns{
		State:    c.StateColumn,
		Name:     c.NameColumn,
		FirstRow: c.FirstDataRow,
	}
}
