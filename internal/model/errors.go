package model

import "errors"

// ErrNoData indicates that a line handed to the parser was empty. An empty
// string is the only input the line grammar rejects.
var ErrNoData = errors.New("no data: line is empty")

// ErrInvalidPriority indicates a priority value that is not exactly one
// uppercase ASCII letter (A-Z).
var ErrInvalidPriority = errors.New("priority must be a single uppercase letter (A-Z)")
