// Package sync is the dispatcher around the pure reconciler: it owns
// locking, snapshot acquisition, batch application, saving, history and
// the HTTP surface.
//
// A run always works from full, fresh snapshots of the origin and target
// sheets. Bulk interactive edits do not reliably enumerate the cells they
// touched, so the dispatcher never trusts an incremental delta.
//
// Overlapping runs are kept apart in two layers: concurrent requests for
// the same workbook and origin collapse into a single run (singleflight),
// and a TTL advisory lock on the workbook path rejects runs that would
// interleave writes from a different origin.
package sync
