package sourcemap

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNewEmptyForNonPositiveLength(t *testing.T) {
	assert.Equal(t, SourceMap(nil), New(5, 0))
	assert.Equal(t, SourceMap(nil), New(5, -1))
}

func TestUnionMergesOverlapping(t *testing.T) {
	a := New(0, 5)
	b := New(3, 5)
	got := Union(a, b)
	assert.Equal(t, SourceMap{{Offset: 0, Length: 8}}, got)
}

func TestUnionKeepsDisjointSeparate(t *testing.T) {
	a := New(0, 2)
	b := New(10, 2)
	got := Union(a, b)
	assert.Equal(t, SourceMap{{Offset: 0, Length: 2}, {Offset: 10, Length: 2}}, got)
}

func TestUnionCoalescesAdjacent(t *testing.T) {
	a := New(0, 5)
	b := New(5, 5)
	got := Union(a, b)
	assert.Equal(t, SourceMap{{Offset: 0, Length: 10}}, got)
}

func TestIntersectWindowClips(t *testing.T) {
	m := SourceMap{{Offset: 0, Length: 10}}
	got := m.IntersectWindow(Range{Offset: 4, Length: 4})
	assert.Equal(t, SourceMap{{Offset: 4, Length: 4}}, got)
}

func TestBytesConcatenatesRanges(t *testing.T) {
	source := []byte("0123456789")
	m := SourceMap{{Offset: 0, Length: 2}, {Offset: 5, Length: 3}}
	assert.Equal(t, []byte("01567"), m.Bytes(source))
}

func TestBytesClampsOutOfRange(t *testing.T) {
	source := []byte("abc")
	m := SourceMap{{Offset: -2, Length: 10}}
	assert.Equal(t, []byte("abc"), m.Bytes(source))
}

func TestFirstAndEmpty(t *testing.T) {
	var m SourceMap
	assert.Equal(t, -1, m.First())
	assert.True(t, m.Empty())

	m = New(3, 1)
	assert.Equal(t, 3, m.First())
	assert.False(t, m.Empty())
}
