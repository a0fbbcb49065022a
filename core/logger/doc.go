// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production) and integrates with the Fiber
// server mode.
//
// # Context Awareness
//
// The WithRayID helper extracts the request's RayID from a Fiber context
// and attaches it to the log entry, so every log line produced while
// serving one sync or export request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// The pure reconciler never logs; logging is reserved for the effectful
// layers around it.
package logger
