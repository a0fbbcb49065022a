// Package reconcile computes the minimal set of checkbox writes needed to
// bring a target sheet into agreement with an origin sheet.
//
// The package is deliberately pure: it performs no I/O, never logs, and
// never mutates its inputs. Callers (see feature/sync) own snapshot
// acquisition and batch application; this package only answers the question
// "which rows must change, and how few bulk writes can cover them?".
//
// # Pipeline
//
// A reconciliation pass is three function calls:
//
//  1. BuildSourceMap indexes the origin sheet's rows into a
//     normalized-name -> state map.
//  2. DiffTarget scans a target sheet's rows against that map and emits one
//     Update per row whose state must change. Formula cells are never
//     touched, regardless of what they evaluate to.
//  3. GroupBatches packs the updates into maximal contiguous runs so the
//     caller can issue one bulk write per run.
//
// # Row filtering
//
// Rows whose checkbox cell does not hold a genuine boolean, or whose name
// is blank after whitespace normalization, are not entries and are skipped
// silently on both sides. Headers, separators and half-filled rows must
// never break a scan.
//
// The only loud failure in the package is a parallel-slice length mismatch
// in ZipSource/ZipTarget. That is a caller bug which would silently
// misalign states, names and formula flags, so it fails fast instead.
package reconcile
