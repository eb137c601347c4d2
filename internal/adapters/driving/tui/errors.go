package tui

import "errors"

// ErrMissingPolicyService is returned when the policy service is not provided.
var ErrMissingPolicyService = errors.New("tui: policy service is required")

// ErrMissingTermsService is returned when the terms service is not provided.
var ErrMissingTermsService = errors.New("tui: terms service is required")

// ErrMissingExportService is returned when the export service is not provided.
var ErrMissingExportService = errors.New("tui: export service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
