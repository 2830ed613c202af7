package spdb

import (
	"path/filepath"
	"testing"
)

func TestDefaultRootFallback(t *testing.T) {
	t.Setenv(RootEnv, "")
	root := DefaultRoot()
	if filepath.Base(root) != "data" {
		t.Fatalf("DefaultRoot() = %q, want the module data directory", root)
	}
}

// Default is process wide, so this is the only test that calls it.
func TestDefaultUsesRootEnv(t *testing.T) {
	root := writeTree(t)
	t.Setenv(RootEnv, root)

	if got := DefaultRoot(); got != root {
		t.Fatalf("DefaultRoot() = %q, want %q", got, root)
	}
	db, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	if db.Paths.Root != root {
		t.Fatalf("root = %q, want %q", db.Paths.Root, root)
	}
	if MustDefault() != db {
		t.Fatal("MustDefault must return the instance loaded by Default")
	}
}
