package token

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		path string
		want []string
	}{
		// Dot delimiter
		{
			name: "single frame number", path: "/a/file.1001.tif",
			want: []string{"/a/file.", "1001", ".tif"},
		},
		{
			name: "two frame numbers", path: "file.0100.0200.exr",
			want: []string{"file.", "0100", ".", "0200", ".exr"},
		},
		{
			name: "digits between literals", path: "/some/path/file.7.asdfasdfasd.1001.tif",
			want: []string{"/some/path/file.", "7", ".asdfasdfasd", ".", "1001", ".tif"},
		},
		{
			name: "version digits not delimited", path: "/shots/v2/plate.0042.dpx",
			want: []string{"/shots/v2/plate.", "0042", ".dpx"},
		},
		{
			name: "directory digits stay literal", path: "/shots/v2.0/plate.0042.dpx",
			want: []string{"/shots/v2.0/plate.", "0042", ".dpx"},
		},

		// Underscore uv delimiter
		{
			name: "uv tile pair", path: "/tex/wood_u1_v2.tif",
			want: []string{"/tex/wood_u", "1", "_v", "2", ".tif"},
		},
		{
			name: "padded uv tile pair", path: "tile_u0012_v0034.exr",
			want: []string{"tile_u", "0012", "_v", "0034", ".exr"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Split(tc.path)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tc.path, diff)
			}
			assert.Equal(t, tc.path, strings.Join(got, ""), "parts must concatenate back to the input")
		})
	}
}

func TestSplitDelimiterPriority(t *testing.T) {
	// Both delimiters are present; the dot rule is tried first and wins.
	got, err := Split("/tex/wood_u1_v2.1001.tif")
	require.NoError(t, err)
	assert.Equal(t, []string{"/tex/wood_u1_v2.", "1001", ".tif"}, got)
}

func TestSplitNoDigits(t *testing.T) {
	for _, path := range []string{
		"/a/file.tif",
		"/a/file_uv.tif",
		"README",
	} {
		_, err := Split(path)
		var nde NoDigitsError
		require.ErrorAs(t, err, &nde, "path %q", path)
		assert.Equal(t, path, nde.Path)
	}
}

func TestBasenameOnly(t *testing.T) {
	// Digits in the directory alone do not make a path splittable.
	_, err := Choose("/renders/v001/beauty.tif")
	var nde NoDigitsError
	require.ErrorAs(t, err, &nde)

	// A delimited digit run in a directory component does not become a
	// value either; only the basename is partitioned.
	s, err := Choose("/renders/scene.12/beauty.0001.tif")
	require.NoError(t, err)
	parts := s.Split("/renders/scene.12/beauty.0001.tif")
	assert.Equal(t, []string{"/renders/scene.12/beauty.", "0001", ".tif"}, parts)
}

func TestDigitsHelpers(t *testing.T) {
	parts := []string{"/a/f.", "0010", ".", "20", ".tif"}
	assert.Equal(t, []string{"0010", "20"}, Digits(parts))
	assert.Equal(t, []string{"/a/f.", ".", ".tif"}, NonDigits(parts))

	assert.True(t, IsDigits("007"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("a1"))
	assert.False(t, IsDigits("1.0"))
}
