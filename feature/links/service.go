package links

import (
	"fmt"
	"strings"

	"sheetsync/core/reconcile"
	"sheetsync/core/workbook"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Report summarizes one rewrite pass.
type Report struct {
	// Scanned is the number of roster-bound hyperlinks inspected.
	Scanned int `json:"scanned"`

	// Rewritten is the number of links repointed at a matched row.
	Rewritten int `json:"rewritten"`

	// Unmatched is the number of links whose text matched no roster entry.
	Unmatched int `json:"unmatched"`
}

// Service rewrites intra-workbook hyperlinks.
type Service struct {
	logger *zap.Logger
}

// NewService creates a link-rewriting service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Rewrite scans every sheet of the workbook for location links into the
// roster sheet and repoints each at the row whose entry name matches the
// link's display text. The workbook is saved when anything changed.
func (s *Service) Rewrite(path, rosterSheet string, cols workbook.Columns) (*Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()

	index, err := buildNameIndex(f, rosterSheet, cols)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	prefix := rosterSheet + "!"

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		for rowIdx, row := range rows {
			for colIdx := range row {
				ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					return nil, fmt.Errorf("cell name (%d,%d): %w", colIdx+1, rowIdx+1, err)
				}

				hasLink, target, err := f.GetCellHyperLink(sheet, ref)
				if err != nil {
					return nil, fmt.Errorf("read hyperlink %s!%s: %w", sheet, ref, err)
				}
				if !hasLink || !strings.HasPrefix(target, prefix) {
					continue
				}
				report.Scanned++

				text, err := f.GetCellValue(sheet, ref)
				if err != nil {
					return nil, fmt.Errorf("read cell %s!%s: %w", sheet, ref, err)
				}

				targetRow, ok := index[linkKey(text)]
				if !ok {
					report.Unmatched++
					continue
				}

				location := fmt.Sprintf("%s%s%d", prefix, cols.Name, targetRow)
				if target == location {
					continue
				}
				if err := f.SetCellHyperLink(sheet, ref, location, "Location"); err != nil {
					return nil, fmt.Errorf("rewrite hyperlink %s!%s: %w", sheet, ref, err)
				}
				report.Rewritten++
			}
		}
	}

	if report.Rewritten > 0 {
		if err := f.Save(); err != nil {
			return nil, fmt.Errorf("save workbook %q: %w", path, err)
		}
	}

	s.logger.Info("Link rewrite completed",
		zap.String("workbook", path),
		zap.String("roster", rosterSheet),
		zap.Int("scanned", report.Scanned),
		zap.Int("rewritten", report.Rewritten),
		zap.Int("unmatched", report.Unmatched),
	)

	return report, nil
}

// buildNameIndex maps folded entry names to their roster row. On duplicate
// names the first row wins, so links land on the topmost occurrence.
func buildNameIndex(f *excelize.File, sheet string, cols workbook.Columns) (map[string]int, error) {
	last, err := workbook.LastRow(f, sheet)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	for row := cols.FirstRow; row <= last; row++ {
		name, err := f.GetCellValue(sheet, fmt.Sprintf("%s%d", cols.Name, row))
		if err != nil {
			return nil, fmt.Errorf("read cell %s!%s%d: %w", sheet, cols.Name, row, err)
		}

		key := linkKey(name)
		if key == "" {
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = row
		}
	}
	return index, nil
}

// linkKey folds a name for case-insensitive matching.
func linkKey(name string) string {
	return strings.ToLower(reconcile.NormalizeName(name))
}
