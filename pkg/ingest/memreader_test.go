package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestReader() *MemReader {
	r := NewMemReader()
	snap62 := NewGroup()
	snap62.Datasets["mvir"] = Float64Dataset{1.1, 2.2, 3.3}
	snap62.Datasets["id"] = Int64Dataset{10, 20, 30}
	snap62.Attributes["num_subhalos"] = ScalarAttribute{I: 3}
	r.Root.Groups["snapshot_062"] = snap62
	r.Root.Attributes["box_size"] = ScalarAttribute{F: 100.0}
	return r
}

func TestMemReaderGetDatasetTraversesNestedGroup(t *testing.T) {
	r := buildTestReader()

	ds, err := r.GetDataset("snapshot_062/mvir")
	require.NoError(t, err)

	vals, err := ds.Float64Slice()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.1, 2.2, 3.3}, vals)
}

func TestMemReaderGetDatasetTopLevel(t *testing.T) {
	r := NewMemReader()
	r.Root.Datasets["redshift"] = Float64Dataset{0.0}

	ds, err := r.GetDataset("redshift")
	require.NoError(t, err)

	vals, err := ds.Float64Slice()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.0}, vals)
}

func TestMemReaderGetDatasetMissingGroupReturnsError(t *testing.T) {
	r := buildTestReader()

	_, err := r.GetDataset("snapshot_999/mvir")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group")
	assert.Contains(t, err.Error(), "snapshot_999")
}

func TestMemReaderGetDatasetMissingNameReturnsError(t *testing.T) {
	r := buildTestReader()

	_, err := r.GetDataset("snapshot_062/rvir")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset")
	assert.Contains(t, err.Error(), "snapshot_062/rvir")
}

func TestMemReaderGetAttributeTraversesNestedGroup(t *testing.T) {
	r := buildTestReader()

	attr, err := r.GetAttribute("snapshot_062/num_subhalos")
	require.NoError(t, err)

	n, err := attr.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestMemReaderGetAttributeTopLevel(t *testing.T) {
	r := buildTestReader()

	attr, err := r.GetAttribute("box_size")
	require.NoError(t, err)

	v, err := attr.Float64()
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)
}

func TestMemReaderGetAttributeMissingGroupReturnsError(t *testing.T) {
	r := buildTestReader()

	_, err := r.GetAttribute("snapshot_999/num_subhalos")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group")
}

func TestMemReaderGetAttributeMissingNameReturnsError(t *testing.T) {
	r := buildTestReader()

	_, err := r.GetAttribute("snapshot_062/missing_attr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attribute")
	assert.Contains(t, err.Error(), "snapshot_062/missing_attr")
}

func TestFloat64DatasetInt64SliceTruncates(t *testing.T) {
	d := Float64Dataset{1.9, 2.1, -3.5}

	out, err := d.Int64Slice()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, -3}, out)
}

func TestInt64DatasetFloat64Slice(t *testing.T) {
	d := Int64Dataset{10, 20, 30}

	out, err := d.Float64Slice()
	require.NoError(t, err)
	assert.Equal(t, []float64{10.0, 20.0, 30.0}, out)
}

func TestScalarAttributeString(t *testing.T) {
	a := ScalarAttribute{S: "millennium"}

	s, err := a.String()
	require.NoError(t, err)
	assert.Equal(t, "millennium", s)
}
