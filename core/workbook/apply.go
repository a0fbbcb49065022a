package workbook

import (
	"fmt"

	"sheetsync/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// ApplyBatches writes each batch as one bulk column write against the
// checkbox column, leaving every other cell untouched. The caller is
// responsible for saving the file afterwards.
func ApplyBatches(f *excelize.File, sheet, stateCol string, batches []reconcile.Batch) error {
	for _, b := range batches {
		values := make([]any, len(b.Values))
		for i, v := range b.Values {
			values[i] = v
		}

		start := fmt.Sprintf("%s%d", stateCol, b.StartRow)
		if err := f.SetSheetCol(sheet, start, &values); err != nil {
			return fmt.Errorf("write batch %s!%s (%d rows): %w", sheet, start, len(values), err)
		}
	}
	return nil
}
