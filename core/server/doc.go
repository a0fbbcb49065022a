// Package server holds configuration for the HTTP server mode.
package server
