// Package sqlite provides the SQLite-backed implementation of the
// StateStore driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Wizard state is stored as
// one JSON blob per document type; the blob carries the service info, the
// selection, the detail records, the mode flag, the completion rate and the
// last generated document, so a later process restores exactly what the
// previous one saw.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.lawkit/data/state.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
