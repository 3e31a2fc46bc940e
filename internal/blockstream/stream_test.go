package blockstream

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/zendesk/snowcrash/internal/blocklex"
)

func TestPeekAdvanceMonotonic(t *testing.T) {
	source := []byte("# A\n\n# B\n")
	blocks := blocklex.Lex(source)
	s := New(source, blocks)

	var seen []blocklex.Kind
	last := -1
	for !s.AtEnd() {
		assert.True(t, s.Pos() >= last, "cursor must not move backward")
		last = s.Pos()
		b, ok := s.Peek()
		assert.True(t, ok)
		seen = append(seen, b.Kind)
		s.Advance()
	}
	assert.Equal(t, []blocklex.Kind{blocklex.Header, blocklex.Header}, seen)
}

func TestPeekAtLookahead(t *testing.T) {
	source := []byte("# A\n\n# B\n")
	blocks := blocklex.Lex(source)
	s := New(source, blocks)

	first, ok := s.PeekAt(0)
	assert.True(t, ok)
	assert.Equal(t, "A", string(first.Content))

	second, ok := s.PeekAt(1)
	assert.True(t, ok)
	assert.Equal(t, "B", string(second.Content))

	_, ok = s.PeekAt(5)
	assert.False(t, ok)
}

func TestSeekRestoresLookaheadPosition(t *testing.T) {
	source := []byte("# A\n\n# B\n")
	blocks := blocklex.Lex(source)
	s := New(source, blocks)

	saved := s.Pos()
	s.Advance()
	s.Seek(saved)
	assert.Equal(t, saved, s.Pos())
}

func TestSkipToSectionEndRespectsNesting(t *testing.T) {
	source := []byte("- one\n  - nested\n- two\n")
	blocks := blocklex.Lex(source)
	s := New(source, blocks)

	end := s.SkipToSectionEnd(blocklex.ListBegin, blocklex.ListEnd)
	assert.Equal(t, len(blocks), end)
	assert.True(t, s.AtEnd())
}

func TestSubSpanMapsBackToSource(t *testing.T) {
	source := []byte("# Title\n")
	blocks := blocklex.Lex(source)
	s := New(source, blocks)

	b, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "# Title\n", string(s.SubSpan(b.Span)))
}
