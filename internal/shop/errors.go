package shop

import "github.com/pkg/errors"

// Error taxonomy of the shop core. Data sources and the editor wrap
// these sentinels so callers can branch with errors.Is regardless of
// which backend produced the failure.
var (
	// ErrNotFound reports a lookup by identifier that missed.
	ErrNotFound = errors.New("product not found")
	// ErrValidation reports a record the persistence layer refused.
	ErrValidation = errors.New("validation failure")
	// ErrTransport reports a data-source call that did not complete.
	ErrTransport = errors.New("transport failure")
)
