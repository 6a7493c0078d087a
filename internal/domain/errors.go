package domain

import "errors"

// Domain-specific errors for content lookups.
var (
	// Section errors
	ErrSectionNotFound = errors.New("section not found")

	// Icon errors
	ErrIconNotFound = errors.New("icon not found")
	ErrIconEmpty    = errors.New("icon markup is empty after sanitizing")
)
