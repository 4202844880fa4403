package repository

import "errors"

// ErrRowNotFound reports that an entity expected to be stored has no row.
var ErrRowNotFound = errors.New("row not found")
