package reconcile

// SourceRow is one row of the origin sheet as supplied by the snapshot
// layer: the raw checkbox cell value and the raw entry name.
type SourceRow struct {
	// Value is the raw checkbox cell content. Only rows whose Value is a
	// genuine bool participate in source-map construction; strings,
	// numbers and empty cells are skipped.
	Value any

	// Name is the raw entry name, normalized before use as a map key.
	Name string
}

// TargetRow is one row of a target sheet. The implied row index is the
// position in the slice plus the caller's first data row.
type TargetRow struct {
	// Value is the raw checkbox cell content.
	Value any

	// Name is the raw entry name.
	Name string

	// Formula marks a formula-protected cell. Formula rows are never
	// written to, regardless of their evaluated value.
	Formula bool
}

// Update is a pending change to a single target row.
type Update struct {
	// Row is the 1-based sheet row index.
	Row int `json:"row"`

	// Value is the checkbox state to write.
	Value bool `json:"value"`
}

// Batch is a maximal run of updates covering exactly consecutive rows.
// Values[i] belongs to row StartRow+i.
type Batch struct {
	// StartRow is the 1-based sheet row index of the first update.
	StartRow int `json:"start_row"`

	// Values holds the new checkbox states in ascending row order.
	Values []bool `json:"values"`
}

// EndRow returns the 1-based index of the last row covered by the batch.
func (b Batch) EndRow() int {
	return b.StartRow + len(b.Values) - 1
}
