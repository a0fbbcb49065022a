// Package loader wires self-contained features (sync, export) into the
// Fiber app at startup. Each feature owns its routes and dependencies; the
// loader only sequences registration.
package loader
