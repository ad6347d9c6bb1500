package domain

import "errors"

// Error classes shared by all scheduling operations.
// Operation packages wrap these in their own sentinels.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)
