package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"sheetsync/core/utils"
)

// NormalizeName collapses every whitespace run (spaces, tabs, newlines) to
// a single ASCII space and trims the ends. Two names are the same entry iff
// their normalized forms are identical; comparison stays case-sensitive.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// BuildSourceMap indexes the origin sheet's rows into a map from normalized
// name to checkbox state.
//
// A row participates only if its Value is dynamically a bool and its
// normalized name is non-empty; everything else (headers, separators,
// partially filled rows) is skipped silently. On duplicate normalized names
// the last occurrence wins, matching a single top-to-bottom scan of the
// grid. BuildSourceMap cannot fail.
func BuildSourceMap(rows []SourceRow) map[string]bool {
	src := make(map[string]bool)
	for _, row := range rows {
		state, ok := utils.AsBool(row.Value)
		if !ok {
			continue
		}
		name := NormalizeName(row.Name)
		if name == "" {
			continue
		}
		src[name] = state
	}
	return src
}

// DiffTarget scans the target rows top-to-bottom and returns one Update per
// row whose state must change to match the source map. firstRow is the
// 1-based sheet row of rows[0].
//
// A row is skipped when it is formula-protected, when its name is blank
// after normalization, when its entry is absent from the source map, or
// when its state already matches. None of these are errors; they are the
// normal "nothing to do" cases. Every duplicate-name row is evaluated
// independently against the same source value.
func DiffTarget(src map[string]bool, rows []TargetRow, firstRow int) []Update {
	var updates []Update
	for i, row := range rows {
		if row.Formula {
			continue
		}
		name := NormalizeName(row.Name)
		if name == "" {
			continue
		}
		want, ok := src[name]
		if !ok {
			continue
		}
		current, isBool := utils.AsBool(row.Value)
		if isBool && current == want {
			continue
		}
		updates = append(updates, Update{Row: firstRow + i, Value: want})
	}
	return updates
}

// GroupBatches packs updates into maximal contiguous runs, ordered
// ascending by start row. The input need not be sorted; sorting here is
// idempotent so row-ordered callers pay nothing extra. An empty input
// yields an empty output.
func GroupBatches(updates []Update) []Batch {
	if len(updates) == 0 {
		return nil
	}

	sorted := make([]Update, len(updates))
	copy(sorted, updates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Row < sorted[j].Row
	})

	batches := []Batch{{StartRow: sorted[0].Row, Values: []bool{sorted[0].Value}}}
	for _, u := range sorted[1:] {
		last := &batches[len(batches)-1]
		if u.Row == last.EndRow()+1 {
			last.Values = append(last.Values, u.Value)
			continue
		}
		batches = append(batches, Batch{StartRow: u.Row, Values: []bool{u.Value}})
	}
	return batches
}

// ZipSource pairs parallel value and name slices into source rows.
// A length mismatch is a caller contract violation: the grids were read
// inconsistently and zipping them would misalign states and names, so it
// fails immediately with a descriptive error.
func ZipSource(values []any, names []string) ([]SourceRow, error) {
	if len(values) != len(names) {
		return nil, fmt.Errorf("source grid dimension mismatch: %d values vs %d names", len(values), len(names))
	}
	rows := make([]SourceRow, len(values))
	for i := range values {
		rows[i] = SourceRow{Value: values[i], Name: names[i]}
	}
	return rows, nil
}

// ZipTarget pairs parallel value, name and formula-flag slices into target
// rows, with the same fail-fast contract as ZipSource.
func ZipTarget(values []any, names []string, formulas []bool) ([]TargetRow, error) {
	if len(values) != len(names) || len(values) != len(formulas) {
		return nil, fmt.Errorf("target grid dimension mismatch: %d values vs %d names vs %d formula flags",
			len(values), len(names), len(formulas))
	}
	rows := make([]TargetRow, len(values))
	for i := range values {
		rows[i] = TargetRow{Value: values[i], Name: names[i], Formula: formulas[i]}
	}
	return rows, nil
}
