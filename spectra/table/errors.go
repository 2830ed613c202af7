package table

import "errors"

var (
	// ErrEmpty is returned for a table without a wavelength axis.
	ErrEmpty = errors.New("table: no wavelength axis")
	// ErrRagged is returned when a curve length differs from the axis length.
	ErrRagged = errors.New("table: curve length does not match wavelength axis")
	// ErrNotIncreasing is returned when the wavelength axis is not strictly increasing.
	ErrNotIncreasing = errors.New("table: wavelengths must be strictly increasing")
	// ErrAxisMismatch is returned when two tables do not share a wavelength axis.
	ErrAxisMismatch = errors.New("table: wavelength axes differ")
)
