package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/frameseq/internal/sequence"
)

func TestElementLineSequence(t *testing.T) {
	s, err := sequence.Make("/a/im.####.tif", 10, 20)
	require.NoError(t, err)

	got := ElementLine(s, false)
	assert.Equal(t, "/a/im.####.tif [10-20]  (11 frames)", got)
}

func TestElementLineItem(t *testing.T) {
	it, err := sequence.NewItem("/a/im.0001.tif")
	require.NoError(t, err)

	assert.Equal(t, "/a/im.0001.tif", ElementLine(it, false))
}

func TestElementLineLargeCount(t *testing.T) {
	s, err := sequence.Make("/a/im.######.tif", 1, 2500)
	require.NoError(t, err)

	got := ElementLine(s, false)
	assert.Contains(t, got, "(2,500 frames)")
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "2 sequence(s), 3 single item(s)", Summary(2, 3, 0))
	assert.Equal(t, "1 sequence(s), 0 single item(s), 4 skipped", Summary(1, 0, 4))
	assert.Equal(t, "1,000 sequence(s), 0 single item(s)", Summary(1000, 0, 0))
}
