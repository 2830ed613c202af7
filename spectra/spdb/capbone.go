package spdb

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectra/spectra/table"
)

// OptionalTable is a table that may be unavailable. The zero value is
// unavailable.
type OptionalTable struct {
	table *table.Table
	err   error
}

// Get returns the table, or an error wrapping ErrUnavailable and the cause.
func (o OptionalTable) Get() (*table.Table, error) {
	if o.table != nil {
		return o.table, nil
	}
	if o.err == nil {
		return nil, ErrUnavailable
	}
	return nil, fmt.Errorf("%w: %w", ErrUnavailable, o.err)
}

// Available reports whether the table was loaded.
func (o OptionalTable) Available() bool { return o.table != nil }

// Capbone100K is the 114120-sample Capbone reflectance archive. File holds
// the expected archive path whether or not it could be read.
type Capbone100K struct {
	File string
	R    OptionalTable
}

// Child implements Node.
func (c *Capbone100K) Child(key string) (any, bool) {
	switch key {
	case "R":
		return c.R, true
	case "file":
		return c.File, true
	}
	return nil, false
}

// Keys implements Node.
func (c *Capbone100K) Keys() []string { return []string{"R", "file"} }

// CapboneSet groups the Capbone archives by size.
type CapboneSet struct {
	K100 *Capbone100K
}

// Child implements Node.
func (c *CapboneSet) Child(key string) (any, bool) {
	if key == "100k" {
		return c.K100, true
	}
	return nil, false
}

// Keys implements Node.
func (c *CapboneSet) Keys() []string { return []string{"100k"} }

// capbone never fails: a missing or unreadable archive is recorded as
// unavailable.
func (l *loader) capbone(name, display string) *CapboneSet {
	c := &Capbone100K{File: display}
	if !l.cfg.Capbone {
		c.R = OptionalTable{err: ErrSkipped}
		return &CapboneSet{K100: c}
	}

	t, err := readNPZTable(l.fsys, name, capboneArray)
	if err != nil {
		l.cfg.Logger.Warn("capbone archive unavailable", "file", display, "error", err)
		c.R = OptionalTable{err: err}
		return &CapboneSet{K100: c}
	}
	l.cfg.Logger.Debug("loaded dataset", "file", name, "curves", t.NumCurves(), "wavelengths", t.Len())
	c.R = OptionalTable{table: t}
	return &CapboneSet{K100: c}
}

// readNPZTable reads the wavelength-first 2-D numeric array called array
// from the .npz archive name. A decoder panic on a corrupt archive is returned as an
// error.
func readNPZTable(fsys fs.FS, name, array string) (t *table.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("%s: decode: %v", name, r)
		}
	}()

	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	ra, ok := f.(io.ReaderAt)
	if !ok {
		raw, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		ra = bytes.NewReader(raw)
	}

	r, err := npz.NewReader(ra, st.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	key := ""
	for _, k := range r.Keys() {
		if strings.TrimSuffix(k, ".npy") == array {
			key = k
			break
		}
	}
	if key == "" {
		return nil, fmt.Errorf("%s: no array %q: %w", name, array, fs.ErrNotExist)
	}

	m, err := readNPZMatrix(r, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", name, key, err)
	}
	rows, _ := m.Dims()
	out := make([][]float64, rows)
	for i := range out {
		out[i] = m.RawRowView(i)
	}
	t, err = table.New(out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// readNPZMatrix decodes the 2-D array key into a dense float64 matrix.
// Float32 and integer arrays are widened.
func readNPZMatrix(r *npz.Reader, key string) (*mat.Dense, error) {
	hdr := r.Header(key)
	if hdr == nil {
		return nil, fs.ErrNotExist
	}
	shape := hdr.Descr.Shape
	if len(shape) != 2 || shape[0] < 1 || shape[1] < 1 {
		return nil, fmt.Errorf("shape %v, want a non-empty 2-D array: %w", shape, ErrShape)
	}

	dtype := strings.TrimLeft(hdr.Descr.Type, "<>|=")
	if dtype == "f8" {
		var m mat.Dense
		if err := r.Read(key, &m); err != nil {
			return nil, err
		}
		return &m, nil
	}

	var flat []float64
	var err error
	switch dtype {
	case "f4":
		flat, err = readWidened[float32](r, key)
	case "i1":
		flat, err = readWidened[int8](r, key)
	case "i2":
		flat, err = readWidened[int16](r, key)
	case "i4":
		flat, err = readWidened[int32](r, key)
	case "i8":
		flat, err = readWidened[int64](r, key)
	case "u1":
		flat, err = readWidened[uint8](r, key)
	case "u2":
		flat, err = readWidened[uint16](r, key)
	case "u4":
		flat, err = readWidened[uint32](r, key)
	case "u8":
		flat, err = readWidened[uint64](r, key)
	default:
		return nil, fmt.Errorf("unsupported dtype %q", hdr.Descr.Type)
	}
	if err != nil {
		return nil, err
	}

	rows, cols := shape[0], shape[1]
	if len(flat) != rows*cols {
		return nil, fmt.Errorf("%d values for shape %v: %w", len(flat), shape, ErrShape)
	}
	if hdr.Descr.Fortran {
		return mat.DenseCopyOf(mat.NewDense(cols, rows, flat).T()), nil
	}
	return mat.NewDense(rows, cols, flat), nil
}

type npyNumber interface {
	~float32 | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// readWidened reads the array key in its stored element type and converts
// it to float64, in file order.
func readWidened[T npyNumber](r *npz.Reader, key string) ([]float64, error) {
	var raw []T
	if err := r.Read(key, &raw); err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = float64(v)
	}
	return out, nil
}
