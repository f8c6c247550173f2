package ingest

// Group is an in-memory namespace node: it may hold nested groups,
// datasets, and attributes, mirroring the hierarchical layout the real
// reader traverses on disk.
type Group struct {
	Groups     map[string]*Group
	Datasets   map[string]Dataset
	Attributes map[string]Attribute
}

// NewGroup returns an empty group ready for population.
func NewGroup() *Group {
	return &Group{
		Groups:     make(map[string]*Group),
		Datasets:   make(map[string]Dataset),
		Attributes: make(map[string]Attribute),
	}
}

// MemReader is an in-memory DatasetReader backed by a root Group, for
// tests and the demo CLI.
type MemReader struct {
	Root *Group
}

// NewMemReader returns a reader over an empty root group.
func NewMemReader() *MemReader {
	return &MemReader{Root: NewGroup()}
}

func (r *MemReader) GetDataset(path string) (Dataset, error) {
	components := pathComponents(path)
	group := r.Root
	for _, c := range components[:len(components)-1] {
		next, ok := group.Groups[c]
		if !ok {
			return nil, errNotFound("group", c)
		}
		group = next
	}
	name := components[len(components)-1]
	ds, ok := group.Datasets[name]
	if !ok {
		return nil, errNotFound("dataset", path)
	}
	return ds, nil
}

func (r *MemReader) GetAttribute(path string) (Attribute, error) {
	components := pathComponents(path)
	group := r.Root
	for _, c := range components[:len(components)-1] {
		next, ok := group.Groups[c]
		if !ok {
			return nil, errNotFound("group", c)
		}
		group = next
	}
	name := components[len(components)-1]
	attr, ok := group.Attributes[name]
	if !ok {
		return nil, errNotFound("attribute", path)
	}
	return attr, nil
}

// Float64Dataset is a Dataset backed by an in-memory float64 slice.
type Float64Dataset []float64

func (d Float64Dataset) Float64Slice() ([]float64, error) { return d, nil }
func (d Float64Dataset) Int64Slice() ([]int64, error) {
	out := make([]int64, len(d))
	for i, v := range d {
		out[i] = int64(v)
	}
	return out, nil
}

// Int64Dataset is a Dataset backed by an in-memory int64 slice.
type Int64Dataset []int64

func (d Int64Dataset) Int64Slice() ([]int64, error) { return d, nil }
func (d Int64Dataset) Float64Slice() ([]float64, error) {
	out := make([]float64, len(d))
	for i, v := range d {
		out[i] = float64(v)
	}
	return out, nil
}

// ScalarAttribute is an Attribute backed by a single in-memory value.
type ScalarAttribute struct {
	F float64
	I int64
	S string
}

func (a ScalarAttribute) Float64() (float64, error) { return a.F, nil }
func (a ScalarAttribute) Int64() (int64, error)     { return a.I, nil }
func (a ScalarAttribute) String() (string, error)   { return a.S, nil }
