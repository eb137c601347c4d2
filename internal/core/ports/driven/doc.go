// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - StateStore: Wizard state persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RemoteGenerator: Server-side document generation. Without it,
//     documents are assembled locally.
//   - Clipboard: System clipboard. Without it, clipboard export is disabled.
//   - PDFPrinter: HTML-to-PDF printing. Without it, PDF export is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
