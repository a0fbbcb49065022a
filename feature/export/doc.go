// Package export serializes a whole workbook's values and formulas to a
// flat JSON dump and applies such dumps back onto workbooks. Dumps can be
// kept as local files or archived in object storage.
//
// Formula cells round-trip as formulas, everything else as values; a dump
// applied to a fresh workbook reproduces the original cell content,
// without styles or layout.
package export
