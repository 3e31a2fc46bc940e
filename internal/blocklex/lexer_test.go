package blocklex

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func kinds(blocks []Block) []Kind {
	out := make([]Kind, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind
	}

	return out
}

func TestLexHeaderLevels(t *testing.T) {
	blocks := Lex([]byte("# Title\n\n## Sub\n"))
	assert.Equal(t, []Kind{Header, Header}, kinds(blocks))
	assert.Equal(t, 1, blocks[0].Level)
	assert.Equal(t, 2, blocks[1].Level)
	assert.Equal(t, "Title", string(blocks[0].Content))
}

func TestLexParagraph(t *testing.T) {
	blocks := Lex([]byte("First line\nsecond line\n"))
	assert.Equal(t, []Kind{Paragraph}, kinds(blocks))
	assert.Equal(t, "First line\nsecond line", string(blocks[0].Content))
}

func TestLexHRule(t *testing.T) {
	blocks := Lex([]byte("---\n"))
	assert.Equal(t, []Kind{HRule}, kinds(blocks))
}

func TestLexFencedCode(t *testing.T) {
	blocks := Lex([]byte("```\n{\"a\": 1}\n```\n"))
	assert.Equal(t, []Kind{Code}, kinds(blocks))
	assert.Equal(t, `{"a": 1}`, string(blocks[0].Content))
}

func TestLexUnterminatedCodeAbsorbsRest(t *testing.T) {
	blocks := Lex([]byte("```\nline one\nline two\n"))
	assert.Equal(t, []Kind{Code}, kinds(blocks))
	assert.Equal(t, "line one\nline two", string(blocks[0].Content))
}

func TestLexListBalanced(t *testing.T) {
	blocks := Lex([]byte("- one\n- two\n"))
	assert.Equal(t, []Kind{
		ListBegin,
		ListItemBegin, Paragraph, ListItemEnd,
		ListItemBegin, Paragraph, ListItemEnd,
		ListEnd,
	}, kinds(blocks))
}

func TestLexListItemContinuationLine(t *testing.T) {
	blocks := Lex([]byte("- Headers\n  more text\n"))
	assert.Equal(t, []Kind{ListBegin, ListItemBegin, Paragraph, ListItemEnd, ListEnd}, kinds(blocks))
}

func TestLexQuoteBalanced(t *testing.T) {
	blocks := Lex([]byte("> quoted text\n> more\n"))
	k := kinds(blocks)
	assert.Equal(t, QuoteBegin, k[0])
	assert.Equal(t, QuoteEnd, k[len(k)-1])
}

func TestLexEveryBeginHasMatchingEnd(t *testing.T) {
	source := []byte("# Title\n\n- one\n  - nested\n- two\n\n> quote\n")
	blocks := Lex(source)

	var stack []Kind
	for _, b := range blocks {
		if b.Kind.IsBegin() {
			stack = append(stack, b.Kind)
		}
		if b.Kind.IsEnd() {
			assert.True(t, len(stack) > 0, "unmatched end %v", b.Kind)
			top := stack[len(stack)-1]
			assert.Equal(t, b.Kind.Match(), top)
			stack = stack[:len(stack)-1]
		}
	}
	assert.Equal(t, 0, len(stack))
}

func TestLexHTML(t *testing.T) {
	blocks := Lex([]byte("<div>\nhello\n</div>\n"))
	assert.Equal(t, []Kind{HTML}, kinds(blocks))
}

func TestLexSpansWithinSource(t *testing.T) {
	source := []byte("# Title\n\nSome paragraph text.\n")
	blocks := Lex(source)
	for _, b := range blocks {
		for _, r := range b.Span {
			assert.True(t, r.Offset >= 0 && r.End() <= len(source))
		}
	}
}
