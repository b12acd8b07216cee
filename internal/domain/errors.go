package domain

import "errors"

// Sentinel errors for page content
var (
	// ErrDuplicateAnchor indicates two sections share an anchor
	ErrDuplicateAnchor = errors.New("duplicate section anchor")

	// ErrUnknownAnchor indicates an anchor that no section carries
	ErrUnknownAnchor = errors.New("unknown section anchor")

	// ErrEmptyPage indicates a page without sections
	ErrEmptyPage = errors.New("page has no sections")
)
