package domain

import "errors"

// ErrNotFound is returned by repositories when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID is returned when a record is created with an id that is already taken.
var ErrDuplicateID = errors.New("duplicate id")
