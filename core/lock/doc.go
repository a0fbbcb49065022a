// Package lock provides advisory, time-limited locks used to keep
// overlapping sync runs from stepping on the same workbook.
//
// Locks are advisory with a TTL rather than hard mutexes: a holder that
// crashes mid-run must not wedge the workbook forever, so every lock
// expires on its own. The reconciler itself never takes locks; locking
// belongs entirely to the dispatcher layer.
//
// Two backends are provided: an in-process table for the single-binary
// case, and a Redis-backed store for deployments where several processes
// may trigger syncs against shared workbooks.
package lock
