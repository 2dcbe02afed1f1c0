package usecase

import "errors"

// ErrNotFound is returned when a query matched zero rows.
var ErrNotFound = errors.New("not found")
