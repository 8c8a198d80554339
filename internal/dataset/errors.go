package dataset

import "errors"

// Domain errors for loading simulation output.
var (
	// ErrNotFound indicates the input file does not exist.
	ErrNotFound = errors.New("dataset: input file not found")

	// ErrParse indicates the file is not well-formed numeric CSV.
	ErrParse = errors.New("dataset: malformed csv")

	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("dataset: required column missing")
)
