package domain

import "errors"

var (
	// ErrSupplierNotFound is returned when a supplier id has no record
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidSortMode is returned for sort modes other than "price" or "score"
	ErrInvalidSortMode = errors.New("sort mode must be 'price' or 'score'")
)
