package export

import "time"

// CellDump is one non-empty cell of a sheet.
type CellDump struct {
	// Ref is the cell reference, e.g. "B4".
	Ref string `json:"ref"`

	// Value is the cell's displayed value. Empty for pure formula cells
	// with no cached result.
	Value string `json:"value,omitempty"`

	// Formula is the cell's formula, when it has one.
	Formula string `json:"formula,omitempty"`
}

// SheetDump holds every captured cell of one sheet, in row-major order.
type SheetDump struct {
	Cells []CellDump `json:"cells"`
}

// Dump is a full workbook serialization.
type Dump struct {
	// Workbook is the source workbook path or name.
	Workbook string `json:"workbook"`

	// ExportedAt is when the dump was taken.
	ExportedAt time.Time `json:"exported_at"`

	// Sheets maps sheet name to its captured cells.
	Sheets map[string]SheetDump `json:"sheets"`
}

// CellCount returns the total number of captured cells.
func (d *Dump) CellCount() int {
	n := 0
	for _, s := range d.Sheets {
		n += len(s.Cells)
	}
	return n
}
