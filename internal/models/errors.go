package models

import "errors"

// ErrNotFound indicates that a referenced board, column or task does not exist.
// Packages wrap it with their own sentinel so callers can match either one.
var ErrNotFound = errors.New("not found")
