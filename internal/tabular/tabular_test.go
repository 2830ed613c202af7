package tabular

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"380,0.1,0.2", []string{"380", "0.1", "0.2"}},
		{"380, 0.1 ,0.2", []string{"380", "0.1", "0.2"}},
		{"380;0.1;0.2", []string{"380", "0.1", "0.2"}},
		{"380\t0.1\t0.2", []string{"380", "0.1", "0.2"}},
		{"380   0.1 0.2", []string{"380", "0.1", "0.2"}},
		{"5R 4.0", []string{"5R", "4.0"}},
		{`1,"LED, warm white",phosphor`, []string{"1", "LED, warm white", "phosphor"}},
		{`1; "a;b";c`, []string{"1", "a;b", "c"}},
		{`"x,y";2`, []string{"x,y", "2"}},
		{`1,""`, []string{"1", ""}},
		{"1\t\t2", []string{"1", "", "2"}},
	}

	for _, tt := range tests {
		got, err := Split(tt.line)
		if err != nil {
			t.Fatalf("Split(%q) error: %v", tt.line, err)
		}
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Fatalf("Split(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestParseHeader(t *testing.T) {
	in := "# comment\n\nname,x,y\nA,1,2\nB,3,4\n"

	fr, err := Parse(strings.NewReader(in), true)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if len(fr.Header) != 3 || fr.Header[0] != "name" {
		t.Fatalf("header = %q", fr.Header)
	}
	if len(fr.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(fr.Rows))
	}
	if fr.Column("y") != 2 || fr.Column("z") != -1 {
		t.Fatalf("unexpected column lookup")
	}

	ys, err := fr.FloatColumn(2)
	if err != nil {
		t.Fatalf("FloatColumn error: %v", err)
	}
	if ys[0] != 2 || ys[1] != 4 {
		t.Fatalf("ys = %v", ys)
	}

	names := fr.StringColumn(0)
	if names[0] != "A" || names[1] != "B" {
		t.Fatalf("names = %q", names)
	}
}

func TestSplitUnterminatedQuote(t *testing.T) {
	if _, err := Split(`1,"open`); !errors.Is(err, csv.ErrQuote) {
		t.Fatalf("err = %v, want csv.ErrQuote", err)
	}
}

func TestParseQuotedLabels(t *testing.T) {
	in := "id,name,type\n1,\"Source 1, warm\",LED\n2,Source 2,\"CFL\"\n"

	fr, err := Parse(strings.NewReader(in), true)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if fr.Width() != 3 || len(fr.Rows) != 2 {
		t.Fatalf("shape = %d rows x %d, want 2 x 3", len(fr.Rows), fr.Width())
	}
	if got := fr.StringColumn(1); got[0] != "Source 1, warm" || got[1] != "Source 2" {
		t.Fatalf("names = %q", got)
	}
	if got := fr.StringColumn(2); got[1] != "CFL" {
		t.Fatalf("types = %q", got)
	}

	_, err = Parse(strings.NewReader("id,name\n1,\"broken\n"), true)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("err = %v, want an error naming line 2", err)
	}
}

func TestParseRagged(t *testing.T) {
	_, err := Parse(strings.NewReader("1,2,3\n4,5\n"), false)
	if !errors.Is(err, ErrRagged) {
		t.Fatalf("err = %v, want ErrRagged", err)
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader("\n# only a comment\n"), false)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}

	_, err = Parse(strings.NewReader("a,b\n"), true)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("header only: err = %v, want ErrEmpty", err)
	}
}

func TestReadNumeric(t *testing.T) {
	fsys := fstest.MapFS{
		"spds/x.dat":   {Data: []byte("380 1.5\n385 2.5\n390 3.5\n")},
		"spds/bad.dat": {Data: []byte("380,1\n385,oops\n")},
	}

	header, rows, err := ReadNumeric(fsys, "spds/x.dat", false)
	if err != nil {
		t.Fatalf("ReadNumeric error: %v", err)
	}
	if header != nil {
		t.Fatalf("header = %q, want nil", header)
	}
	if len(rows) != 3 || rows[2][0] != 390 || rows[2][1] != 3.5 {
		t.Fatalf("rows = %v", rows)
	}

	_, _, err = ReadNumeric(fsys, "spds/bad.dat", false)
	if err == nil || !strings.Contains(err.Error(), "spds/bad.dat") {
		t.Fatalf("err = %v, want parse error naming the file", err)
	}

	_, _, err = ReadNumeric(fsys, "spds/missing.dat", false)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}
