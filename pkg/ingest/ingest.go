// Package ingest defines the narrow contract the merger-tree builder
// expects from the hierarchical dataset reader that loads halo/subhalo
// catalogs. The real HDF5-backed reader is out of scope for this
// module; this package ships only the interface and an in-memory fake
// for tests and the demo CLI.
package ingest

import (
	"fmt"
	"strings"
)

// Dataset is an opaque handle to a named dataset within the
// hierarchical namespace.
type Dataset interface {
	// Float64Slice returns the dataset's contents as a flat slice of
	// float64, the common case for physical quantities.
	Float64Slice() ([]float64, error)
	// Int64Slice returns the dataset's contents as a flat slice of
	// int64, the common case for identifiers.
	Int64Slice() ([]int64, error)
}

// Attribute is an opaque handle to a named scalar attribute.
type Attribute interface {
	Float64() (float64, error)
	Int64() (int64, error)
	String() (string, error)
}

// DatasetReader traverses a hierarchical namespace whose path
// components are separated by '/'. A path with no separator names a
// top-level entry; a separator-delimited path traverses intermediate
// groups by component, the final component naming the dataset or
// attribute.
type DatasetReader interface {
	GetDataset(path string) (Dataset, error)
	GetAttribute(path string) (Attribute, error)
}

// pathComponents splits path on '/', matching the traversal semantics
// of the original hierarchical reader.
func pathComponents(path string) []string {
	return strings.Split(path, "/")
}

func errNotFound(kind, path string) error {
	return fmt.Errorf("ingest: %s %q not found", kind, path)
}
