package repository

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a mutation carries invalid input
// (empty required text, unknown sentiment value).
var ErrValidation = errors.New("invalid input")
