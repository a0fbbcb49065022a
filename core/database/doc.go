// Package database manages the connection to the sync-history database.
//
// The connection is optional: a failed connect only disables run history,
// never the sync itself. SQLite is the default for a local tool; MySQL is
// selectable for shared deployments.
package database
