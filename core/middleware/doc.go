// Package middleware groups the Fiber middlewares used by the server mode:
// ray-ID request tracing and API-key authentication.
package middleware
