// Package workbook is the boundary between the pure reconciler and xlsx
// files. It reads full column snapshots (checkbox state, entry name,
// formula flags) from a sheet and applies batched checkbox writes, using
// excelize for all cell access.
//
// Snapshots are always full and fresh: the package rereads the whole
// configured column range on every call instead of trusting any
// incremental edit information, because bulk edits do not reliably
// enumerate the cells they touched.
//
// A checkbox state only counts as set when the cell's stored type is
// boolean. String renditions like "TRUE" or "1" are left untyped so the
// reconciler can treat them as mismatches rather than states.
package workbook
