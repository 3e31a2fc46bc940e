// Package blocklex implements the Markdown block lexer that the
// Blueprint parser consumes: a line-oriented state machine (in the
// style of a hand-rolled state-function lexer) that turns UTF-8 source
// bytes into a flat, typed sequence of Block values, each carrying its
// byte span in the original source.
//
// The lexer guarantees the contract the parser relies on: every
// Begin kind is matched by an End of the same kind at the same nesting
// depth, Code blocks carry their text verbatim, and header levels are
// always in 1..6. Nesting is tracked on an explicit stack, so an
// unbalanced stream can only be produced by hand-constructing a Block
// slice in a test, never by Lex itself.
package blocklex

import "github.com/zendesk/snowcrash/internal/sourcemap"

// Kind enumerates the Markdown block kinds the parser understands.
type Kind int

const (
	Header Kind = iota
	Paragraph
	Code
	HRule
	QuoteBegin
	QuoteEnd
	ListBegin
	ListEnd
	ListItemBegin
	ListItemEnd
	HTML
)

// String returns a human-readable block kind name, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Header:
		return "Header"
	case Paragraph:
		return "Paragraph"
	case Code:
		return "Code"
	case HRule:
		return "HRule"
	case QuoteBegin:
		return "QuoteBegin"
	case QuoteEnd:
		return "QuoteEnd"
	case ListBegin:
		return "ListBegin"
	case ListEnd:
		return "ListEnd"
	case ListItemBegin:
		return "ListItemBegin"
	case ListItemEnd:
		return "ListItemEnd"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// IsBegin reports whether k opens a balanced container.
func (k Kind) IsBegin() bool {
	return k == QuoteBegin || k == ListBegin || k == ListItemBegin
}

// IsEnd reports whether k closes a balanced container. Use Match to get
// the Begin kind it pairs with.
func (k Kind) IsEnd() bool {
	return k == QuoteEnd || k == ListEnd || k == ListItemEnd
}

// Match returns the counterpart Begin/End kind for a balanced pair.
func (k Kind) Match() Kind {
	switch k {
	case QuoteBegin:
		return QuoteEnd
	case QuoteEnd:
		return QuoteBegin
	case ListBegin:
		return ListEnd
	case ListEnd:
		return ListBegin
	case ListItemBegin:
		return ListItemEnd
	case ListItemEnd:
		return ListItemBegin
	default:
		return k
	}
}

// Block is one unit produced by the lexer: a kind, its content bytes
// (meaning depends on Kind; Begin/End markers carry none), a level
// (header depth, or container nesting depth for ListBegin/ListEnd and
// QuoteBegin/QuoteEnd; 0 for every other kind), and the byte span of
// the block in the original source.
type Block struct {
	Kind    Kind
	Level   int
	Content []byte
	Span    sourcemap.SourceMap
}
