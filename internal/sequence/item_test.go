package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/frameseq/internal/notation"
	"github.com/backmassage/frameseq/internal/token"
)

func TestNewItem(t *testing.T) {
	it, err := NewItem("/a/file.0010.tif")
	require.NoError(t, err)
	assert.Equal(t, "/a/file.0010.tif", it.Path())
	assert.Equal(t, "/a/file.0010.tif", it.String())
	assert.Equal(t, `Item("/a/file.0010.tif")`, it.GoString())

	_, err = NewItem("/a/file.tif")
	var nde token.NoDigitsError
	require.ErrorAs(t, err, &nde)
}

func TestItemAnatomy(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		values   []int
		paddings []int
		format   notation.FormatString
	}{
		{
			name: "single run", path: "/a/file.0010.tif",
			values: []int{10}, paddings: []int{4},
			format: "/a/file.{}.tif",
		},
		{
			name: "two runs", path: "/some/path/file.7.asdfasdfasd.1001.tif",
			values: []int{7, 1001}, paddings: []int{1, 4},
			format: "/some/path/file.{}.asdfasdfasd.{}.tif",
		},
		{
			name: "uv tile", path: "/tex/wood_u01_v02.tif",
			values: []int{1, 2}, paddings: []int{2, 2},
			format: "/tex/wood_u{}_v{}.tif",
		},
		{
			name: "versioned directory", path: "/shots/v2.0/plate.0042.dpx",
			values: []int{42}, paddings: []int{4},
			format: "/shots/v2.0/plate.{}.dpx",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it, err := NewItem(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.values, it.Values())
			assert.Equal(t, tc.paddings, it.Paddings())
			assert.Equal(t, len(tc.values), it.Dimensions())
			assert.Equal(t, tc.format, it.Format())
		})
	}
}

func TestItemValue(t *testing.T) {
	it, err := NewItem("/a/file.0010.tif")
	require.NoError(t, err)
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	multi, err := NewItem("/tex/wood_u1_v2.tif")
	require.NoError(t, err)
	_, err = multi.Value()
	var dme DimensionMismatchError
	require.ErrorAs(t, err, &dme)
	assert.Equal(t, 2, dme.Actual)
}

func TestItemPadding(t *testing.T) {
	it, err := NewItem("/a/file.7.beauty.1001.tif")
	require.NoError(t, err)

	p, err := it.Padding(0)
	require.NoError(t, err)
	assert.Equal(t, 1, p)
	p, err = it.Padding(1)
	require.NoError(t, err)
	assert.Equal(t, 4, p)

	_, err = it.Padding(2)
	assert.Error(t, err)
	_, err = it.Padding(-1)
	assert.Error(t, err)
}

func TestItemSetValue(t *testing.T) {
	it, err := NewItem("/a/file.0010.tif")
	require.NoError(t, err)

	// The previous padding survives the rewrite.
	require.NoError(t, it.SetValue(7))
	assert.Equal(t, "/a/file.0007.tif", it.Path())

	// A wider value keeps its full width.
	require.NoError(t, it.SetValue(123456))
	assert.Equal(t, "/a/file.123456.tif", it.Path())

	multi, err := NewItem("/tex/wood_u01_v02.tif")
	require.NoError(t, err)
	var dme DimensionMismatchError
	require.ErrorAs(t, multi.SetValue(5), &dme)

	require.NoError(t, multi.SetValueAt(5, 1))
	assert.Equal(t, "/tex/wood_u01_v05.tif", multi.Path())

	require.NoError(t, multi.SetValues([]int{3, 4}))
	assert.Equal(t, "/tex/wood_u03_v04.tif", multi.Path())

	assert.Error(t, multi.SetValueAt(1, 2))
	require.ErrorAs(t, multi.SetValues([]int{1}), &dme)
}

func TestItemSetPadding(t *testing.T) {
	it, err := NewItem("/a/file.0010.tif")
	require.NoError(t, err)

	it.SetPadding(6)
	assert.Equal(t, "/a/file.000010.tif", it.Path())

	// Narrower than the value: the full value survives.
	it.SetPadding(1)
	assert.Equal(t, "/a/file.10.tif", it.Path())

	multi, err := NewItem("/tex/wood_u1_v2.tif")
	require.NoError(t, err)
	require.NoError(t, multi.SetPaddingAt(3, 0))
	assert.Equal(t, "/tex/wood_u001_v2.tif", multi.Path())
	assert.Error(t, multi.SetPaddingAt(3, 5))
}

func TestItemCloneIsolation(t *testing.T) {
	it, err := NewItem("/a/file.0010.tif")
	require.NoError(t, err)

	clone := it.Clone()
	require.NoError(t, clone.SetValue(99))
	assert.Equal(t, "/a/file.0010.tif", it.Path())
	assert.Equal(t, "/a/file.0099.tif", clone.Path())
}

func TestItemEqual(t *testing.T) {
	a, err := NewItem("/a/file.0010.tif")
	require.NoError(t, err)
	b, err := NewItem("/a/file.0010.tif")
	require.NoError(t, err)
	c, err := NewItem("/a/file.0011.tif")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestItemMatchesTemplate(t *testing.T) {
	it, err := NewItem("/a/file.0010.tif")
	require.NoError(t, err)

	assert.True(t, it.MatchesTemplate("/a/file.0020.tif"))
	assert.False(t, it.MatchesTemplate("/b/file.0020.tif"), "different directory")
	assert.False(t, it.MatchesTemplate("/a/other.0020.tif"), "different stem")
	assert.False(t, it.MatchesTemplate("/a/file.tif"), "no digits")
}

func TestItemPromote(t *testing.T) {
	it, err := NewItem("/something/some_file.1001.tif")
	require.NoError(t, err)

	seq, err := it.Promote("/something/some_file.1003.tif")
	require.NoError(t, err)
	assert.Equal(t, "/something/some_file.####.tif", seq.Template())
	assert.Equal(t, 3, seq.Count())
	assert.Equal(t, []int{1001}, seq.Start())
	assert.Equal(t, []int{1003}, seq.End())
	assert.True(t, seq.ContainsPath("/something/some_file.1002.tif"))
}

func TestItemPromoteReversed(t *testing.T) {
	it, err := NewItem("/something/some_file.1003.tif")
	require.NoError(t, err)

	seq, err := it.Promote("/something/some_file.1001.tif")
	require.NoError(t, err)
	assert.Equal(t, []int{1001}, seq.Start())
	assert.Equal(t, []int{1003}, seq.End())
}

func TestItemPromoteErrors(t *testing.T) {
	it, err := NewItem("/something/some_file.1001.tif")
	require.NoError(t, err)

	_, err = it.Promote("/something/other_file.1002.tif")
	var tme TemplateMismatchError
	require.ErrorAs(t, err, &tme)

	_, err = it.Promote("/something/some_file.1001.tif")
	var ive IdenticalValueError
	require.ErrorAs(t, err, &ive)
}
