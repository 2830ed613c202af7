package spdb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-spectra/spectra/table"
)

// Node is a dataset grouping that can be walked by key.
type Node interface {
	// Child returns the value stored under key.
	Child(key string) (any, bool)
	// Keys lists the keys of the node in a stable order.
	Keys() []string
}

// Registry is a dynamically keyed grouping of datasets, used for the
// aggregate reflectance registries.
type Registry map[string]any

// Child implements Node.
func (r Registry) Child(key string) (any, bool) {
	v, ok := r[key]
	return v, ok
}

// Keys implements Node. Keys are sorted.
func (r Registry) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Walk resolves path below root.
func Walk(root Node, path ...string) (any, error) {
	var cur any = root
	for i, key := range path {
		n, ok := cur.(Node)
		if !ok {
			return nil, fmt.Errorf("%s: %w", strings.Join(path[:i+1], "/"), ErrNotFound)
		}
		next, ok := n.Child(key)
		if !ok {
			return nil, fmt.Errorf("%s: %w", strings.Join(path[:i+1], "/"), ErrNotFound)
		}
		cur = next
	}
	return cur, nil
}

// Dataset is one table reachable from a Node.
type Dataset struct {
	Path  string
	Table *table.Table
}

// Datasets lists every table reachable from root in key order. A table
// reachable through several paths is listed once, under its first path.
// Unavailable optional tables are skipped.
func Datasets(root Node) []Dataset {
	var out []Dataset
	seen := make(map[*table.Table]bool)
	var visit func(prefix string, v any)
	visit = func(prefix string, v any) {
		switch x := v.(type) {
		case *table.Table:
			if x != nil && !seen[x] {
				seen[x] = true
				out = append(out, Dataset{Path: prefix, Table: x})
			}
		case OptionalTable:
			if t, err := x.Get(); err == nil {
				visit(prefix, t)
			}
		case Node:
			for _, k := range x.Keys() {
				child, ok := x.Child(k)
				if !ok {
					continue
				}
				p := k
				if prefix != "" {
					p = prefix + "/" + k
				}
				visit(p, child)
			}
		}
	}
	visit("", root)
	return out
}
