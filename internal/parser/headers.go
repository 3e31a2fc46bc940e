package parser

import (
	"strings"

	"github.com/zendesk/snowcrash/internal/blocklex"
	"github.com/zendesk/snowcrash/internal/blueprint"
	"github.com/zendesk/snowcrash/internal/descparse"
	"github.com/zendesk/snowcrash/internal/report"
	"github.com/zendesk/snowcrash/internal/sourcemap"
)

// parseHeadersItem parses a Headers list item: the cursor sits at its
// ListItemBegin. Returns the parsed pairs; the cursor ends after the
// item's ListItemEnd.
func (p *Parser) parseHeadersItem() []blueprint.KeyValue {
	item, _ := p.stream.Peek()
	span := item.Span

	descparse.EnterListItem(p.stream)

	var trailer string
	if b, ok := p.stream.Peek(); ok && b.Kind == blocklex.Paragraph {
		_, rest := descparse.SplitFirstLine(string(b.Content))
		trailer = rest
		p.stream.Advance()
	}

	asset := descparse.Asset(p.stream, trailer, p.rep, span)
	headers := parseHeaderLines(asset, p.rep, span)

	descparse.CloseItem(p.stream)

	return headers
}

// parseHeaderLines splits a Headers asset into Name: Value pairs.
// Duplicate names within the same container (case-insensitive) emit a
// RedefinitionWarning; the later occurrence wins.
func parseHeaderLines(asset string, rep *report.Report, span sourcemap.SourceMap) []blueprint.KeyValue {
	var headers []blueprint.KeyValue
	seen := map[string]int{}

	for _, line := range strings.Split(asset, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		idx := strings.IndexByte(line, ':')
		if idx <= 0 {
			continue
		}
		name := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		key := strings.ToLower(name)

		if i, dup := seen[key]; dup {
			rep.Warn(report.RedefinitionWarning, "header '"+name+"' is defined more than once", span)
			headers[i].Value = value

			continue
		}
		seen[key] = len(headers)
		headers = append(headers, blueprint.KeyValue{Key: name, Value: value})
	}

	return headers
}

// mergeHeaders merges child headers over base headers: a name present in
// both is overridden by the child's value and recorded with a
// RedefinitionWarning (inner scope wins over outer scope). Names unique
// to base are carried through unchanged.
func mergeHeaders(rep *report.Report, base, child []blueprint.KeyValue, span sourcemap.SourceMap) []blueprint.KeyValue {
	if len(child) == 0 {
		return base
	}

	index := map[string]int{}
	merged := make([]blueprint.KeyValue, len(base))
	copy(merged, base)
	for i, kv := range merged {
		index[strings.ToLower(kv.Key)] = i
	}

	for _, kv := range child {
		key := strings.ToLower(kv.Key)
		if i, ok := index[key]; ok {
			rep.Warn(report.RedefinitionWarning, "header '"+kv.Key+"' overrides an inherited value", span)
			merged[i] = kv

			continue
		}
		index[key] = len(merged)
		merged = append(merged, kv)
	}

	return merged
}
