// Package domain defines the core business entities for lawkit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ServiceInfo / TermsServiceInfo: The service being documented
//   - DetailInput: Per-item collection details for the privacy policy
//   - TermsFeatureInput: Per-feature details for the terms of service
//   - GeneratedDocument / GeneratedTerms: Assembled documents
//   - PolicyState / TermsState: Persisted wizard state
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
