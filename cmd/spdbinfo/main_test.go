package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectra/internal/testutil"
	"github.com/cwbudde/algo-spectra/spectra/spdb"
	"github.com/cwbudde/algo-spectra/spectra/table"
)

func loadTree(t *testing.T) *spdb.Database {
	t.Helper()
	db, err := spdb.Load(testutil.SpectralTree(), spdb.WithCapbone(false))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return db
}

func TestRunShapes(t *testing.T) {
	db := loadTree(t)

	var buf bytes.Buffer
	if err := run(&buf, db, false, false, "", []string{"rfl/macbeth/CC/R", "illuminants/E"}); err != nil {
		t.Fatalf("run error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Dataset", "rfl/macbeth/CC/R", "24", "illuminants/E", "471"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunList(t *testing.T) {
	db := loadTree(t)

	var buf bytes.Buffer
	if err := run(&buf, db, true, false, "", nil); err != nil {
		t.Fatalf("run error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(spdb.Datasets(db)) {
		t.Fatalf("listed %d datasets, want %d", len(lines), len(spdb.Datasets(db)))
	}
	if lines[0] != "illuminants/E" {
		t.Fatalf("first dataset = %q, want illuminants/E", lines[0])
	}
}

func TestRunCurvesAndProduct(t *testing.T) {
	db := loadTree(t)

	var buf bytes.Buffer
	if err := run(&buf, db, false, true, "", []string{"cri/mcri"}); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 1+1+10 {
		t.Fatalf("got %d lines, want path, header and 10 curves:\n%s", n, buf.String())
	}

	buf.Reset()
	if err := run(&buf, db, false, false, "illuminants/E=tm30-15/R/99/1nm", nil); err != nil {
		t.Fatalf("product error: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 1+99 {
		t.Fatalf("got %d lines, want header and 99 curves", n)
	}
}

func TestRunErrors(t *testing.T) {
	db := loadTree(t)
	var buf bytes.Buffer

	if err := run(&buf, db, false, false, "", []string{"rfl/nope"}); !errors.Is(err, spdb.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := run(&buf, db, false, false, "", []string{"rfl/munsell"}); !errors.Is(err, errors.ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
	if err := run(&buf, db, false, false, "illuminants/D65", nil); err == nil {
		t.Fatal("expected error for product without '='")
	}
	// D65 is tabulated at 1 nm from 300 nm, Macbeth at 5 nm from 360 nm.
	if err := run(&buf, db, false, false, "illuminants/D65=rfl/macbeth/CC/R", nil); !errors.Is(err, table.ErrAxisMismatch) {
		t.Fatalf("err = %v, want ErrAxisMismatch", err)
	}
	if err := run(&buf, db, false, false, "", []string{"rfl/capbone/100k/R"}); !errors.Is(err, spdb.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}
