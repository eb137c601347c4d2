// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Document assembly lives here as pure functions; the wizard services
// wrap them with persisted state and completion scoring.
package services
