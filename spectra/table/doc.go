// Package table provides the wavelength-first numeric table shared by all
// spectral datasets.
//
// Row 0 of a [Table] is the wavelength axis in nanometers and must be
// strictly increasing. Every further row is one spectral curve (power or
// reflectance) sampled on that axis. Tables are built once and treated as
// read-only; accessors return views into the backing storage and [Table.Clone]
// is the way to obtain an independent copy.
package table
