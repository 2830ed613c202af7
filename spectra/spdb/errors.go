package spdb

import "errors"

var (
	// ErrShape is returned when a file does not have the expected number of
	// curves or columns.
	ErrShape = errors.New("spdb: unexpected dataset shape")
	// ErrCategory is returned for a sample category index outside the
	// known category list.
	ErrCategory = errors.New("spdb: invalid category index")
	// ErrUnavailable marks an optional dataset that could not be loaded.
	ErrUnavailable = errors.New("spdb: dataset unavailable")
	// ErrSkipped is the cause recorded when loading an optional dataset was
	// disabled by configuration.
	ErrSkipped = errors.New("spdb: load skipped by configuration")
	// ErrNotFound is returned by Lookup for an unknown key.
	ErrNotFound = errors.New("spdb: no such dataset")
)
