// Package blockstream provides a positional cursor over a flat Block
// sequence produced by blocklex: peek, advance, nested-section skip, and
// span-to-bytes resolution. The cursor advances monotonically except
// for classifier look-ahead, which never mutates it.
package blockstream

import (
	"github.com/zendesk/snowcrash/internal/blocklex"
	"github.com/zendesk/snowcrash/internal/sourcemap"
)

// Stream is a read-only view over a Block slice with a movable position.
type Stream struct {
	source []byte
	blocks []blocklex.Block
	pos    int
}

// New builds a Stream positioned at the first block.
func New(source []byte, blocks []blocklex.Block) *Stream {
	return &Stream{source: source, blocks: blocks}
}

// Pos returns the current cursor position (an opaque index usable with
// Seek and comparisons for the monotonic-advance invariant).
func (s *Stream) Pos() int {
	return s.pos
}

// Seek repositions the cursor. Used to restore a saved position after
// classifier look-ahead.
func (s *Stream) Seek(pos int) {
	s.pos = pos
}

// AtEnd reports whether the cursor has consumed every block.
func (s *Stream) AtEnd() bool {
	return s.pos >= len(s.blocks)
}

// Peek returns the block at the cursor without advancing. Peek at end
// returns the zero Block and false.
func (s *Stream) Peek() (blocklex.Block, bool) {
	return s.PeekAt(0)
}

// PeekAt returns the block offset blocks ahead of the cursor, without
// advancing.
func (s *Stream) PeekAt(offset int) (blocklex.Block, bool) {
	i := s.pos + offset
	if i < 0 || i >= len(s.blocks) {
		return blocklex.Block{}, false
	}

	return s.blocks[i], true
}

// Advance moves the cursor forward by one block. Advancing at end is a
// no-op.
func (s *Stream) Advance() {
	if s.pos < len(s.blocks) {
		s.pos++
	}
}

// SkipToSectionEnd starts at a balanced begin marker of beginKind at the
// cursor and advances to the matching end marker of endKind, respecting
// nested same-kind begin/end pairs. Returns the position of the block
// immediately after the matching end marker. If the stream is
// unbalanced (a lexer bug — never produced by blocklex.Lex itself), it
// returns the end of the stream.
func (s *Stream) SkipToSectionEnd(beginKind, endKind blocklex.Kind) int {
	b, ok := s.Peek()
	if !ok || b.Kind != beginKind {
		return s.pos
	}

	depth := 0
	i := s.pos
	for i < len(s.blocks) {
		k := s.blocks[i].Kind
		switch {
		case k == beginKind:
			depth++
		case k == endKind:
			depth--
			if depth == 0 {
				i++
				s.pos = i

				return i
			}
		}
		i++
	}

	s.pos = len(s.blocks)

	return s.pos
}

// SubSpan maps a span back to a byte slice of the original source.
func (s *Stream) SubSpan(span sourcemap.SourceMap) []byte {
	return span.Bytes(s.source)
}

// Source returns the full original source buffer.
func (s *Stream) Source() []byte {
	return s.source
}
