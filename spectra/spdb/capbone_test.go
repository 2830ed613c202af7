package spdb

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectra/internal/testutil"
)

// capboneArchive builds an .npz archive holding rows under the Capbone
// array name.
func capboneArchive(t *testing.T, member string, rows [][]float64) []byte {
	t.Helper()
	m := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, r := range rows {
		m.SetRow(i, r)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(member)
	if err != nil {
		t.Fatal(err)
	}
	if err := npyio.Write(w, m); err != nil {
		t.Fatalf("npyio.Write error: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// npyMember encodes rows as a version 1.0 .npy file with the given little
// endian dtype. values converts the flattened data to the Go slice type of
// that dtype.
func npyMember(t *testing.T, descr string, fortran bool, rows [][]float64, values func([]float64) any) []byte {
	t.Helper()
	n, m := len(rows), len(rows[0])
	flat := make([]float64, 0, n*m)
	if fortran {
		for j := 0; j < m; j++ {
			for i := 0; i < n; i++ {
				flat = append(flat, rows[i][j])
			}
		}
	} else {
		for _, r := range rows {
			flat = append(flat, r...)
		}
	}

	order := "False"
	if fortran {
		order = "True"
	}
	dict := fmt.Sprintf("{'descr': '%s', 'fortran_order': %s, 'shape': (%d, %d), }", descr, order, n, m)
	pad := 64 - (10+len(dict)+1)%64
	dict += strings.Repeat(" ", pad%64) + "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY\x01\x00")
	if err := binary.Write(&buf, binary.LittleEndian, uint16(len(dict))); err != nil {
		t.Fatal(err)
	}
	buf.WriteString(dict)
	if err := binary.Write(&buf, binary.LittleEndian, values(flat)); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func zipMember(t *testing.T, member string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(member)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func asFloat32(v []float64) any {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}

func asFloat64(v []float64) any { return v }

func asUint16(v []float64) any {
	out := make([]uint16, len(v))
	for i, x := range v {
		out[i] = uint16(x)
	}
	return out
}

func capboneRows(n int) [][]float64 {
	wl := testutil.Axis(400, 700, 10)
	return append([][]float64{wl}, testutil.DeterministicCurves(5, n, len(wl))...)
}

func TestCapboneAbsent(t *testing.T) {
	db := sharedDatabase(t)
	c := db.Capbone.K100

	if c.R.Available() {
		t.Fatal("capbone should be unavailable without the archive")
	}
	if c.File != "rfls/capbone_100k_rfls.npz" {
		t.Fatalf("file = %q", c.File)
	}
	_, err := c.R.Get()
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want ErrUnavailable wrapping fs.ErrNotExist", err)
	}

	v, err := db.Lookup("rfl", "capbone", "100k", "R")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if v.(OptionalTable).Available() {
		t.Fatal("looked up capbone table should be unavailable")
	}
	v, err = db.Lookup("rfl", "capbone", "100k", "file")
	if err != nil || v != "rfls/capbone_100k_rfls.npz" {
		t.Fatalf("file lookup = %v, %v", v, err)
	}
}

func TestCapbonePresent(t *testing.T) {
	rows := capboneRows(6)
	fsys := testutil.SpectralTree()
	fsys["rfls/capbone_100k_rfls.npz"] = &fstest.MapFile{Data: capboneArchive(t, "_CAPBONE_100K_RFL.npy", rows)}

	db := mustLoad(t, fsys)
	tb, err := db.Capbone.K100.R.Get()
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if tb.NumCurves() != 6 || tb.Len() != len(rows[0]) {
		t.Fatalf("shape = %d curves x %d, want 6 x %d", tb.NumCurves(), tb.Len(), len(rows[0]))
	}
	testutil.RequireSliceNearlyEqual(t, tb.Wavelengths(), rows[0], 0)
	testutil.RequireSliceNearlyEqual(t, tb.Curve(5), rows[6], 0)

	found := false
	for _, d := range Datasets(db) {
		if d.Path == "rfl/capbone/100k/R" {
			found = true
		}
	}
	if !found {
		t.Fatal("loaded capbone table missing from Datasets")
	}
}

func TestCapboneDtypes(t *testing.T) {
	rows := capboneRows(3)
	rows32 := make([][]float64, len(rows))
	for i, r := range rows {
		rows32[i] = make([]float64, len(r))
		for j, v := range r {
			rows32[i][j] = float64(float32(v))
		}
	}
	counts := [][]float64{testutil.Axis(400, 700, 10)}
	for k := 0; k < 3; k++ {
		c := make([]float64, len(counts[0]))
		for j := range c {
			c[j] = float64(1000*k + j)
		}
		counts = append(counts, c)
	}

	tests := []struct {
		name    string
		descr   string
		fortran bool
		rows    [][]float64
		conv    func([]float64) any
		want    [][]float64
	}{
		{"float64", "<f8", false, rows, asFloat64, rows},
		{"float64 fortran", "<f8", true, rows, asFloat64, rows},
		{"float32", "<f4", false, rows, asFloat32, rows32},
		{"float32 fortran", "<f4", true, rows, asFloat32, rows32},
		{"uint16", "<u2", false, counts, asUint16, counts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := npyMember(t, tt.descr, tt.fortran, tt.rows, tt.conv)
			fsys := testutil.SpectralTree()
			fsys["rfls/capbone_100k_rfls.npz"] = &fstest.MapFile{Data: zipMember(t, "_CAPBONE_100K_RFL.npy", member)}

			tb, err := mustLoad(t, fsys).Capbone.K100.R.Get()
			if err != nil {
				t.Fatalf("Get error: %v", err)
			}
			if tb.NumCurves() != len(tt.want)-1 || tb.Len() != len(tt.want[0]) {
				t.Fatalf("shape = %d curves x %d, want %d x %d", tb.NumCurves(), tb.Len(), len(tt.want)-1, len(tt.want[0]))
			}
			testutil.RequireSliceNearlyEqual(t, tb.Wavelengths(), tt.want[0], 0)
			for i := 0; i < tb.NumCurves(); i++ {
				testutil.RequireSliceNearlyEqual(t, tb.Curve(i), tt.want[i+1], 0)
			}
		})
	}
}

func TestCapboneUnreadable(t *testing.T) {
	tests := []struct {
		name string
		data func(t *testing.T) []byte
	}{
		{"garbage", func(*testing.T) []byte { return []byte("not a zip archive") }},
		{"wrong array", func(t *testing.T) []byte { return capboneArchive(t, "other.npy", capboneRows(2)) }},
		{"truncated", func(t *testing.T) []byte {
			raw := capboneArchive(t, "_CAPBONE_100K_RFL.npy", capboneRows(2))
			return raw[:len(raw)/2]
		}},
		{"complex dtype", func(t *testing.T) []byte {
			rows := capboneRows(1)
			member := npyMember(t, "<c16", false, rows, func(v []float64) any {
				return append(append([]float64(nil), v...), v...)
			})
			return zipMember(t, "_CAPBONE_100K_RFL.npy", member)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testutil.SpectralTree()
			fsys["rfls/capbone_100k_rfls.npz"] = &fstest.MapFile{Data: tt.data(t)}

			db, err := Load(fsys)
			if err != nil {
				t.Fatalf("Load must not fail on an unreadable archive: %v", err)
			}
			if db.Capbone.K100.R.Available() {
				t.Fatal("capbone should be unavailable")
			}
			if db.Capbone.K100.File != "rfls/capbone_100k_rfls.npz" {
				t.Fatalf("file = %q", db.Capbone.K100.File)
			}
		})
	}
}

func TestCapboneSkipped(t *testing.T) {
	fsys := testutil.SpectralTree()
	fsys["rfls/capbone_100k_rfls.npz"] = &fstest.MapFile{Data: capboneArchive(t, "_CAPBONE_100K_RFL.npy", capboneRows(2))}

	db := mustLoad(t, fsys, WithCapbone(false))
	if _, err := db.Capbone.K100.R.Get(); !errors.Is(err, ErrSkipped) {
		t.Fatalf("err = %v, want ErrSkipped", err)
	}
}

func TestOptionalTableZero(t *testing.T) {
	var o OptionalTable
	if o.Available() {
		t.Fatal("zero OptionalTable must be unavailable")
	}
	if _, err := o.Get(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}
