package udim

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, it BaseIterator) []int {
	t.Helper()
	return slices.Collect(it.Values())
}

func TestBaseIteratorCarry(t *testing.T) {
	it, err := NewBase(0, 10, 0)
	require.NoError(t, err)

	// The step after 9 carries into the hundreds: 10/10*100 + 0.
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 100}, collect(t, it))
}

func TestBaseIteratorBounds(t *testing.T) {
	cases := []struct {
		name  string
		start int
		end   int
		width int
		want  []int
	}{
		{name: "single value", start: 5, end: 5, want: []int{5}},
		{name: "inside one shell", start: 2, end: 4, want: []int{2, 3, 4}},
		{name: "reversed bounds swap", start: 4, end: 2, want: []int{2, 3, 4}},
		{name: "across two carries", start: 8, end: 21, want: []int{8, 9, 100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 200, 201}},
		{name: "narrow width", start: 0, end: 4, width: 2, want: []int{0, 1, 100, 101, 200}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it, err := NewBase(tc.start, tc.end, tc.width)
			require.NoError(t, err)
			assert.Equal(t, tc.want, collect(t, it))
		})
	}
}

func TestBaseIteratorNegativeStart(t *testing.T) {
	_, err := NewBase(-3, 5, 0)
	var nse NegativeStartError
	require.ErrorAs(t, err, &nse)
	assert.Equal(t, -3, nse.Start)

	// The swap happens first, so a negative end is caught too.
	_, err = NewBase(5, -3, 0)
	require.ErrorAs(t, err, &nse)
}

func TestValuesRestartable(t *testing.T) {
	it, err := NewBase(0, 3, 0)
	require.NoError(t, err)

	seq := it.Values()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	// Early break leaves the iterator reusable.
	var partial []int
	for v := range seq {
		partial = append(partial, v)
		if len(partial) == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, partial)
	assert.Equal(t, first, slices.Collect(seq))
}

func TestMariStyle(t *testing.T) {
	// Mari tiles 1001..1010 are shells 0..9; 1101 starts the second row.
	it, err := New(1001, 1101, 0, Mari)
	require.NoError(t, err)
	got := collect(t, it)
	assert.Equal(t, 11, len(got))
	assert.Equal(t, 0, got[0])
	assert.Equal(t, 9, got[9])
	assert.Equal(t, 100, got[10])
}

func TestNewStyles(t *testing.T) {
	raw, err := New(0, 10, 0, Raw)
	require.NoError(t, err)
	blank, err := New(0, 10, 0, "")
	require.NoError(t, err)
	assert.Equal(t, collect(t, raw), collect(t, blank))

	_, err = New(0, 10, 0, "zbrush")
	var use UnknownStyleError
	require.ErrorAs(t, err, &use)
	assert.Equal(t, Style("zbrush"), use.Style)
}

func Test2DIterator(t *testing.T) {
	it, err := New2D([2]int{0, 0}, [2]int{1, 3}, 0)
	require.NoError(t, err)

	got := slices.Collect(it.Values())
	require.Len(t, got, 14)
	assert.Equal(t, [2]int{0, 0}, got[0])
	assert.Equal(t, [2]int{0, 9}, got[9])
	assert.Equal(t, [2]int{1, 0}, got[10])
	assert.Equal(t, [2]int{1, 3}, got[13])
}

func TestIndexCoords(t *testing.T) {
	for v := 0; v < 40; v++ {
		assert.Equal(t, v, Index(Coords(v, DefaultWidth), DefaultWidth))
	}
	assert.Equal(t, [2]int{1, 3}, Coords(13, DefaultWidth))
	assert.Equal(t, 13, Index([2]int{1, 3}, DefaultWidth))
}
