// Package config assembles the application configuration from environment
// variables and an optional .env file.
//
// Each subsystem owns its partial config struct (core/server, core/storage,
// core/logger, core/database, feature/sync); this package composes them and
// binds defaults declared in struct tags. Environment variables override
// defaults using underscore-separated nested keys, e.g. SYNC_SHEETS or
// SERVER_PORT.
package config
