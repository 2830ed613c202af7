// Package tabular reads delimited numeric and labelled tables from files.
//
// Fields may be separated by commas, semicolons, tabs or runs of spaces.
// Delimited fields may be double quoted to hold the separator.
// Blank lines and lines starting with '#' are ignored. An optional first row
// is returned separately as the header.
package tabular

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned when a file holds no data rows.
	ErrEmpty = errors.New("tabular: no data rows")
	// ErrRagged is returned when rows have differing field counts.
	ErrRagged = errors.New("tabular: ragged rows")
)

// Frame is a labelled table: an optional header and rows of raw cells.
type Frame struct {
	Header []string
	Rows   [][]string
}

// ReadFrame reads name from fsys as a labelled table.
func ReadFrame(fsys fs.FS, name string, header bool) (*Frame, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fr, err := Parse(f, header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return fr, nil
}

// ReadNumeric reads name from fsys and parses every data cell as float64.
func ReadNumeric(fsys fs.FS, name string, header bool) ([]string, [][]float64, error) {
	fr, err := ReadFrame(fsys, name, header)
	if err != nil {
		return nil, nil, err
	}
	rows, err := fr.Floats()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	return fr.Header, rows, nil
}

// Parse reads a table from r. When header is true the first non-blank row is
// stored in Frame.Header instead of Frame.Rows.
func Parse(r io.Reader, header bool) (*Frame, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	fr := &Frame{}
	width := -1
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields, err := Split(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if header && fr.Header == nil {
			fr.Header = fields
			continue
		}
		if width < 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("line %d: %d fields, want %d: %w", line, len(fields), width, ErrRagged)
		}
		fr.Rows = append(fr.Rows, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(fr.Rows) == 0 {
		return nil, ErrEmpty
	}
	return fr, nil
}

// Split breaks a line into trimmed fields. A comma, semicolon or tab outside
// double quotes selects that separator and fields may then be quoted;
// otherwise runs of spaces separate.
func Split(line string) ([]string, error) {
	sep := separator(line)
	if sep == 0 {
		return strings.Fields(line), nil
	}
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = sep
	r.FieldsPerRecord = -1
	// Trimming would merge consecutive tabs.
	r.TrimLeadingSpace = sep != '\t'
	fields, err := r.Read()
	if errors.Is(err, io.EOF) {
		// The reader ran out of input inside a quoted field.
		return nil, csv.ErrQuote
	}
	if err != nil {
		return nil, err
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields, nil
}

// separator returns the first of ',', ';' and '\t' found outside double
// quotes, or 0.
func separator(line string) rune {
	var found [3]bool
	quoted := false
	for _, c := range line {
		switch c {
		case '"':
			quoted = !quoted
		case ',':
			found[0] = found[0] || !quoted
		case ';':
			found[1] = found[1] || !quoted
		case '\t':
			found[2] = found[2] || !quoted
		}
	}
	for i, sep := range []rune{',', ';', '\t'} {
		if found[i] {
			return sep
		}
	}
	return 0
}

// Width returns the number of columns in the frame.
func (f *Frame) Width() int {
	if len(f.Rows) == 0 {
		return len(f.Header)
	}
	return len(f.Rows[0])
}

// Column returns the index of the header column called name, or -1.
func (f *Frame) Column(name string) int {
	for i, h := range f.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Float parses the cell at row, col.
func (f *Frame) Float(row, col int) (float64, error) {
	if row < 0 || row >= len(f.Rows) || col < 0 || col >= len(f.Rows[row]) {
		return 0, fmt.Errorf("cell (%d,%d) out of range", row, col)
	}
	v, err := strconv.ParseFloat(f.Rows[row][col], 64)
	if err != nil {
		return 0, fmt.Errorf("row %d column %d: %w", row+1, col+1, err)
	}
	return v, nil
}

// FloatColumn parses every cell of column col.
func (f *Frame) FloatColumn(col int) ([]float64, error) {
	out := make([]float64, len(f.Rows))
	for i := range f.Rows {
		v, err := f.Float(i, col)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// StringColumn returns a copy of column col.
func (f *Frame) StringColumn(col int) []string {
	out := make([]string, len(f.Rows))
	for i, r := range f.Rows {
		if col >= 0 && col < len(r) {
			out[i] = r[col]
		}
	}
	return out
}

// Floats parses every data cell.
func (f *Frame) Floats() ([][]float64, error) {
	out := make([][]float64, len(f.Rows))
	for i, r := range f.Rows {
		row := make([]float64, len(r))
		for j := range r {
			v, err := f.Float(i, j)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		out[i] = row
	}
	return out, nil
}
