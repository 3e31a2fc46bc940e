// Package descparse holds the small, shared helpers every section
// parser leans on: splitting a block's content into its signature line
// and trailing description, stepping over list/list-item brackets,
// extracting preformatted assets, and emitting the standard
// foreign-block warnings.
package descparse

import (
	"strings"

	"github.com/zendesk/snowcrash/internal/blocklex"
	"github.com/zendesk/snowcrash/internal/blockstream"
	"github.com/zendesk/snowcrash/internal/report"
	"github.com/zendesk/snowcrash/internal/sourcemap"
)

// SplitFirstLine splits content at the first newline. If there is no
// newline, the entire string is the signature and remainder is empty.
func SplitFirstLine(content string) (signature, remainder string) {
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		return content[:idx], content[idx+1:]
	}

	return content, ""
}

// EnterList skips a ListBegin marker at the cursor, if present.
func EnterList(s *blockstream.Stream) {
	if b, ok := s.Peek(); ok && b.Kind == blocklex.ListBegin {
		s.Advance()
	}
}

// EnterListItem skips a ListItemBegin marker at the cursor, if present.
func EnterListItem(s *blockstream.Stream) {
	if b, ok := s.Peek(); ok && b.Kind == blocklex.ListItemBegin {
		s.Advance()
	}
}

// CloseItem consumes a ListItemEnd and any trailing ListEnd at the
// cursor, tolerating their absence (an empty item may have none).
func CloseItem(s *blockstream.Stream) {
	if b, ok := s.Peek(); ok && b.Kind == blocklex.ListItemEnd {
		s.Advance()
	}
	if b, ok := s.Peek(); ok && b.Kind == blocklex.ListEnd {
		s.Advance()
	}
}

// CloseList consumes a trailing ListEnd at the cursor, tolerating its
// absence.
func CloseList(s *blockstream.Stream) {
	if b, ok := s.Peek(); ok && b.Kind == blocklex.ListEnd {
		s.Advance()
	}
}

// Asset extracts the preformatted content of a Body/Schema/data-structure
// list item: if the next block is Code, its verbatim content is the
// asset; otherwise the offending block's original source text is
// adopted (preserving indentation) and a FormattingWarning is recorded.
// trailer is any signature text that followed the keyword on the same
// line (e.g. "Body inline-asset") and, when present, is appended
// verbatim to the asset with the same warning.
func Asset(s *blockstream.Stream, trailer string, rep *report.Report, keywordSpan sourcemap.SourceMap) string {
	var asset string
	var warn bool

	if b, ok := s.Peek(); ok && b.Kind == blocklex.Code {
		asset = string(b.Content)
		s.Advance()
	} else if ok && b.Kind != blocklex.ListItemEnd && b.Kind != blocklex.ListEnd {
		asset = string(s.SubSpan(b.Span))
		warn = true
		s.Advance()
	}

	trailer = strings.TrimSpace(trailer)
	if trailer != "" {
		if asset != "" {
			asset += "\n" + trailer
		} else {
			asset = trailer
		}
		warn = true
	}

	if warn {
		rep.Warn(report.FormattingWarning, "content is expected to be preformatted code block", keywordSpan)
	}

	return asset
}

// ForeignListItem emits the standard warning for an unrecognized list
// item. It does not move the cursor; callers skip the item's subtree
// themselves.
func ForeignListItem(rep *report.Report, span sourcemap.SourceMap) {
	rep.Warn(report.IgnoringWarning, "ignoring unrecognized list item", span)
}

// ForeignList emits the standard warning for an unrecognized top-level
// list.
func ForeignList(rep *report.Report, span sourcemap.SourceMap) {
	rep.Warn(report.IgnoringWarning, "ignoring unrecognized list", span)
}

// ForeignBlock emits the standard warning for any other unrecognized
// block.
func ForeignBlock(rep *report.Report, span sourcemap.SourceMap) {
	rep.Warn(report.IgnoringWarning, "ignoring unrecognized block, check indentation", span)
}

// SkipSubtree advances the cursor past the block at the cursor,
// including its nested Begin/End subtree if it opens one.
func SkipSubtree(s *blockstream.Stream) {
	b, ok := s.Peek()
	if !ok {
		return
	}
	if b.Kind.IsBegin() {
		s.SkipToSectionEnd(b.Kind, b.Kind.Match())

		return
	}
	s.Advance()
}
