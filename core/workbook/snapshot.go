package workbook

import (
	"fmt"

	"sheetsync/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// Columns describes where entry data lives on a sheet.
type Columns struct {
	// State is the checkbox column letter (e.g. "B").
	State string

	// Name is the entry name column letter (e.g. "C").
	Name string

	// FirstRow is the 1-based first data row, below any header.
	FirstRow int
}

// LastRow returns the last populated row of the sheet, or 0 for an empty
// sheet.
func LastRow(f *excelize.File, sheet string) (int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return len(rows), nil
}

// ReadSource snapshots the state and name columns of an origin sheet.
func ReadSource(f *excelize.File, sheet string, cols Columns) ([]reconcile.SourceRow, error) {
	values, names, _, err := readColumns(f, sheet, cols, false)
	if err != nil {
		return nil, err
	}
	return reconcile.ZipSource(values, names)
}

// ReadTarget snapshots the state and name columns of a target sheet,
// including per-row formula protection flags.
func ReadTarget(f *excelize.File, sheet string, cols Columns) ([]reconcile.TargetRow, error) {
	values, names, formulas, err := readColumns(f, sheet, cols, true)
	if err != nil {
		return nil, err
	}
	return reconcile.ZipTarget(values, names, formulas)
}

// readColumns walks the configured column range from the first data row to
// the sheet's last populated row and collects parallel slices.
func readColumns(f *excelize.File, sheet string, cols Columns, withFormulas bool) (values []any, names []string, formulas []bool, err error) {
	last, err := LastRow(f, sheet)
	if err != nil {
		return nil, nil, nil, err
	}

	first := cols.FirstRow
	if first < 1 {
		first = 1
	}

	for row := first; row <= last; row++ {
		stateCell := fmt.Sprintf("%s%d", cols.State, row)
		nameCell := fmt.Sprintf("%s%d", cols.Name, row)

		value, err := cellState(f, sheet, stateCell)
		if err != nil {
			return nil, nil, nil, err
		}
		name, err := f.GetCellValue(sheet, nameCell)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("read cell %s!%s: %w", sheet, nameCell, err)
		}

		values = append(values, value)
		names = append(names, name)

		if withFormulas {
			formula, err := f.GetCellFormula(sheet, stateCell)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("read formula %s!%s: %w", sheet, stateCell, err)
			}
			formulas = append(formulas, formula != "")
		}
	}

	return values, names, formulas, nil
}

// cellState reads a checkbox cell and returns a typed value: bool when the
// stored cell type is boolean, nil when the cell is empty, and the raw
// string otherwise.
func cellState(f *excelize.File, sheet, cell string) (any, error) {
	raw, err := f.GetCellValue(sheet, cell)
	if err != nil {
		return nil, fmt.Errorf("read cell %s!%s: %w", sheet, cell, err)
	}

	cellType, err := f.GetCellType(sheet, cell)
	if err != nil {
		return nil, fmt.Errorf("read cell type %s!%s: %w", sheet, cell, err)
	}

	if cellType == excelize.CellTypeBool {
		return raw == "TRUE", nil
	}
	if raw == "" {
		return nil, nil
	}
	return raw, nil
}
