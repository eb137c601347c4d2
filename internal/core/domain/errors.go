package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownItem indicates an id with no catalog entry.
	ErrUnknownItem = errors.New("unknown catalog item")

	// ErrNoDocument indicates an operation needs a generated document
	// but none has been generated yet.
	ErrNoDocument = errors.New("no document generated")

	// ErrRemoteUnavailable indicates the remote generation endpoint is
	// not configured. Generation falls back to the local assembler.
	ErrRemoteUnavailable = errors.New("remote generation unavailable")

	// ErrClipboardUnavailable indicates no system clipboard could be
	// reached (headless session or missing utility).
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrBrowserUnavailable indicates no Chromium binary could be found
	// or launched. PDF export is disabled without a browser.
	ErrBrowserUnavailable = errors.New("browser unavailable")
)
