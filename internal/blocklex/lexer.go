package blocklex

import (
	"strings"
	"unicode"

	"github.com/zendesk/snowcrash/internal/sourcemap"
)

// line is one physical line of source, with its byte extent including
// (lineEnd) and excluding (end) the trailing newline.
type line struct {
	start, end, lineEnd int
}

// Lex tokenizes source into a flat Block sequence. It never returns an
// unbalanced stream: every Begin is followed, somewhere later at the
// same depth, by its matching End.
func Lex(source []byte) []Block {
	lx := &lexer{source: source, lines: splitLines(source)}

	return lx.run()
}

type lexer struct {
	source []byte
	lines  []line
	blocks []Block
	depth  int
}

func splitLines(source []byte) []line {
	var lines []line
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lines = append(lines, line{start: start, end: i, lineEnd: i + 1})
			start = i + 1
		}
	}
	if start < len(source) {
		lines = append(lines, line{start: start, end: len(source), lineEnd: len(source)})
	}

	return lines
}

func (lx *lexer) run() []Block {
	lx.lexBlocks(0, len(lx.lines), 0)

	return lx.blocks
}

func (lx *lexer) text(ln line) string {
	return string(lx.source[ln.start:ln.end])
}

func indentOf(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' {
			break
		}
		n++
	}

	return n
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// lexBlocks processes lines [from, to) whose own indentation is at
// least floor, emitting blocks for each recognized construct. It is
// called recursively for container bodies (list items, blockquotes),
// with floor raised to the body's required indentation.
func (lx *lexer) lexBlocks(from, to, floor int) {
	i := from
	for i < to {
		raw := lx.text(lx.lines[i])
		if isBlank(raw) {
			i++

			continue
		}

		indent := indentOf(raw)
		if indent < floor {
			return
		}
		trimmed := raw[indent:]

		switch {
		case isHRuleLine(trimmed):
			lx.emitMarker(HRule, 0, lx.lines[i])
			i++
		case strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~"):
			i = lx.lexCode(i, to, indent)
		case floor == 0 && strings.HasPrefix(trimmed, "#"):
			i = lx.lexHeader(i)
		case strings.HasPrefix(trimmed, ">"):
			i = lx.lexQuote(i, to, indent, floor)
		case isListMarker(trimmed):
			i = lx.lexList(i, to, indent, floor)
		case floor == 0 && looksLikeHTML(trimmed):
			i = lx.lexHTML(i, to)
		default:
			i = lx.lexParagraph(i, to, floor)
		}
	}
}

func (lx *lexer) emitMarker(k Kind, level int, ln line) {
	lx.blocks = append(lx.blocks, Block{
		Kind:  k,
		Level: level,
		Span:  sourcemap.New(ln.start, ln.lineEnd-ln.start),
	})
}

func isHRuleLine(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return false
	}
	c := rune(s[0])
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	count := 0
	for _, r := range s {
		switch r {
		case c:
			count++
		case ' ':
		default:
			return false
		}
	}

	return count >= 3
}

func looksLikeHTML(s string) bool {
	return strings.HasPrefix(s, "<") && !strings.HasPrefix(s, "<!--")
}

// lexQuote consumes a run of consecutive "> "-prefixed lines as one
// blockquote, stripping the marker and recursively lexing the
// dedented body.
func (lx *lexer) lexQuote(from, to, indent, floor int) int {
	depth := lx.depth + 1
	start := lx.lines[from].start
	lx.blocks = append(lx.blocks, Block{Kind: QuoteBegin, Level: depth, Span: sourcemap.New(start, 0)})
	lx.depth++

	i := from
	end := start
	var stripped []byte
	for i < to {
		raw := lx.text(lx.lines[i])
		if isBlank(raw) {
			break
		}
		curIndent := indentOf(raw)
		if curIndent < indent {
			break
		}
		trimmed := raw[curIndent:]
		if !strings.HasPrefix(trimmed, ">") {
			break
		}
		body := strings.TrimPrefix(trimmed, ">")
		body = strings.TrimPrefix(body, " ")
		stripped = append(stripped, []byte(body)...)
		stripped = append(stripped, '\n')
		end = lx.lines[i].lineEnd
		i++
	}

	// Re-lex the dedented quote body as an independent block stream
	// fragment, then splice its blocks in. The fragment's spans are
	// offsets into the stripped copy, so every inner block's span is
	// replaced by the span of the whole quote in the original source.
	inner := Lex(stripped)
	for idx := range inner {
		inner[idx].Span = sourcemap.New(start, end-start)
	}
	lx.blocks = append(lx.blocks, inner...)

	lx.blocks = append(lx.blocks, Block{Kind: QuoteEnd, Level: depth, Span: sourcemap.New(end, 0)})
	lx.depth--

	_ = floor

	return i
}

func (lx *lexer) lexHeader(i int) int {
	ln := lx.lines[i]
	raw := lx.text(ln)
	indent := indentOf(raw)
	rest := raw[indent:]

	level := 0
	for level < len(rest) && level < 6 && rest[level] == '#' {
		level++
	}
	text := strings.TrimSpace(strings.TrimLeft(rest[level:], " "))

	lx.blocks = append(lx.blocks, Block{
		Kind:    Header,
		Level:   level,
		Content: []byte(text),
		Span:    sourcemap.New(ln.start, ln.lineEnd-ln.start),
	})

	return i + 1
}

func (lx *lexer) lexHTML(from, to int) int {
	start := lx.lines[from].start
	i := from
	end := lx.lines[from].end
	for i < to {
		if isBlank(lx.text(lx.lines[i])) {
			break
		}
		end = lx.lines[i].end
		i++
	}

	lx.blocks = append(lx.blocks, Block{
		Kind:    HTML,
		Content: lx.source[start:end],
		Span:    sourcemap.New(start, end-start),
	})

	return i
}

// lexCode consumes a fenced code block starting at line i (the opening
// fence), returning the index of the line after the closing fence (or
// to, if the fence is never closed — an unterminated fence is not a
// lexer error, it simply absorbs the rest of the container).
func (lx *lexer) lexCode(i, to, indent int) int {
	openLine := lx.lines[i]
	start := openLine.start
	fence := strings.TrimSpace(lx.text(openLine)[indent:])
	marker := fence[:3]

	contentStart := openLine.lineEnd
	j := i + 1
	contentEnd := contentStart
	closed := false
	for j < to {
		raw := lx.text(lx.lines[j])
		ind := indentOf(raw)
		trimmed := ""
		if ind < len(raw) {
			trimmed = raw[ind:]
		}
		if ind >= indent && strings.HasPrefix(strings.TrimSpace(trimmed), marker) && strings.TrimSpace(trimmed) == strings.Repeat(string(marker[0]), len(strings.TrimSpace(trimmed))) {
			closed = true

			break
		}
		contentEnd = lx.lines[j].lineEnd
		j++
	}

	var body []byte
	if contentEnd > contentStart {
		body = lx.source[contentStart:contentEnd]
		body = []byte(strings.TrimSuffix(string(body), "\n"))
	}

	end := contentEnd
	if closed {
		end = lx.lines[j].lineEnd
		j++
	}

	lx.blocks = append(lx.blocks, Block{
		Kind:    Code,
		Content: body,
		Span:    sourcemap.New(start, end-start),
	})

	return j
}

func (lx *lexer) lexParagraph(from, to, floor int) int {
	start := lx.lines[from].start
	i := from
	end := lx.lines[from].end
	for i < to {
		raw := lx.text(lx.lines[i])
		if isBlank(raw) {
			break
		}
		indent := indentOf(raw)
		if indent < floor {
			break
		}
		trimmed := raw[indent:]
		if i != from && (isHRuleLine(trimmed) || strings.HasPrefix(trimmed, "```") ||
			strings.HasPrefix(trimmed, "~~~") || strings.HasPrefix(trimmed, ">") ||
			isListMarker(trimmed) || (floor == 0 && strings.HasPrefix(trimmed, "#"))) {
			break
		}
		end = lx.lines[i].end
		i++
	}

	lx.blocks = append(lx.blocks, Block{
		Kind:    Paragraph,
		Content: lx.source[start:end],
		Span:    sourcemap.New(start, end-start),
	})

	return i
}

// isListMarker reports whether trimmed begins a bullet or ordered list
// item: "- ", "* ", "+ ", or "<digits>. ".
func isListMarker(trimmed string) bool {
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "+ ") {
		return true
	}

	return orderedMarkerWidth(trimmed) > 0
}

// orderedMarkerWidth returns the byte width of a leading "<digits>. " or
// "<digits>) " marker, or 0 if trimmed does not start with one.
func orderedMarkerWidth(trimmed string) int {
	n := 0
	for n < len(trimmed) && unicode.IsDigit(rune(trimmed[n])) {
		n++
	}
	if n == 0 || n >= len(trimmed) {
		return 0
	}
	if (trimmed[n] == '.' || trimmed[n] == ')') && n+1 < len(trimmed) && trimmed[n+1] == ' ' {
		return n + 2
	}

	return 0
}

func markerWidth(trimmed string) int {
	if w := orderedMarkerWidth(trimmed); w > 0 {
		return w
	}

	return 2 // "- ", "* ", "+ "
}

// lexList consumes a run of sibling list items at the same marker
// indentation, emitting ListBegin, one ListItemBegin/End pair per item
// (with the item's body lexed recursively at the item's content
// indentation), and a closing ListEnd.
func (lx *lexer) lexList(from, to, indent, floor int) int {
	depth := lx.depth + 1
	startOffset := lx.lines[from].start
	lx.blocks = append(lx.blocks, Block{Kind: ListBegin, Level: depth, Span: sourcemap.New(startOffset, 0)})
	lx.depth++

	i := from
	endOffset := startOffset
	for i < to {
		raw := lx.text(lx.lines[i])
		if isBlank(raw) {
			// A single blank line may separate sibling items; two or
			// more, or a following dedent, ends the list.
			if i+1 >= to {
				i++

				break
			}
			next := lx.text(lx.lines[i+1])
			if isBlank(next) {
				i++

				break
			}
			nextIndent := indentOf(next)
			if nextIndent < indent || !isListMarker(next[nextIndent:]) {
				i++

				break
			}
			i++

			continue
		}

		curIndent := indentOf(raw)
		if curIndent != indent {
			break
		}
		trimmed := raw[curIndent:]
		if !isListMarker(trimmed) {
			break
		}

		i, endOffset = lx.lexListItem(i, to, indent, trimmed)
	}

	lx.blocks = append(lx.blocks, Block{Kind: ListEnd, Level: depth, Span: sourcemap.New(endOffset, 0)})
	lx.depth--

	_ = floor

	return i
}

// lexListItem emits ListItemBegin, the item's body blocks, and
// ListItemEnd, returning the index past the item and the byte offset
// its content ended at.
func (lx *lexer) lexListItem(from, to, indent int, firstTrimmed string) (int, int) {
	ln := lx.lines[from]
	width := markerWidth(firstTrimmed)
	contentIndent := indent + width

	lx.blocks = append(lx.blocks, Block{Kind: ListItemBegin, Span: sourcemap.New(ln.start, 0)})

	// The first body line is the remainder of the marker line itself:
	// synthesize it as belonging to the recursive body scan by treating
	// the marker line's own text (sans marker) as if it started at
	// contentIndent. We do this by lexing a virtual paragraph directly,
	// then continuing the recursive scan from the next physical line.
	firstText := firstTrimmed[width:]
	bodyStart := from

	i := from + 1
	end := ln.end
	for i < to {
		raw := lx.text(lx.lines[i])
		if isBlank(raw) {
			if i+1 >= to {
				i++

				break
			}
			nextIndent := indentOf(lx.text(lx.lines[i+1]))
			if nextIndent < contentIndent {
				i++

				break
			}
			i++

			continue
		}
		curIndent := indentOf(raw)
		if curIndent < contentIndent {
			break
		}
		end = lx.lines[i].end
		i++
	}

	firstTextOffset := ln.start + contentIndent
	lx.lexItemBody(bodyStart, i, firstTextOffset, ln.lineEnd, firstText, contentIndent, end)

	lx.blocks = append(lx.blocks, Block{Kind: ListItemEnd, Span: sourcemap.New(end, 0)})

	return i, end
}

// lexItemBody lexes a list item's body: the synthesized first line
// (firstText, starting at markerLineStart) followed by any further
// physical lines [from+1, to), lexed with contentIndent as the
// indentation floor. Block content is sliced from the original source,
// so continuation lines and nested blocks keep their indentation.
func (lx *lexer) lexItemBody(from, to, markerLineStart, markerLineEnd int, firstText string, contentIndent, lastEnd int) {
	trimmedFirst := strings.TrimLeft(firstText, " ")

	if isBlank(trimmedFirst) && from+1 >= to {
		return
	}

	// Collect the signature paragraph: the first line plus any
	// immediately-following plain-text continuation lines, stopping at
	// a nested construct (list, code fence, quote, blank).
	paraEnd := markerLineEnd
	j := from + 1
	for j < to {
		raw := lx.text(lx.lines[j])
		if isBlank(raw) {
			break
		}
		indent := indentOf(raw)
		trimmed := raw[indent:]
		if isListMarker(trimmed) || strings.HasPrefix(trimmed, "```") ||
			strings.HasPrefix(trimmed, "~~~") || strings.HasPrefix(trimmed, ">") {
			break
		}
		paraEnd = lx.lines[j].end
		j++
	}

	if !isBlank(trimmedFirst) || j > from+1 {
		lx.blocks = append(lx.blocks, Block{
			Kind:    Paragraph,
			Content: lx.source[markerLineStart:paraEnd],
			Span:    sourcemap.New(markerLineStart, paraEnd-markerLineStart),
		})
	}

	if j < to {
		lx.lexBlocks(j, to, contentIndent)
	}

	_ = lastEnd
}
