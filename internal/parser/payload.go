package parser

import (
	"strings"

	"github.com/zendesk/snowcrash/internal/blocklex"
	"github.com/zendesk/snowcrash/internal/blueprint"
	"github.com/zendesk/snowcrash/internal/classifier"
	"github.com/zendesk/snowcrash/internal/descparse"
	"github.com/zendesk/snowcrash/internal/report"
	"github.com/zendesk/snowcrash/internal/sourcemap"
)

// parsePayloadItem parses a Request/Response/Model list item: the
// cursor sits at its ListItemBegin. section names the keyword that
// introduced it; that keyword is stripped from the signature line, and
// what remains (a request name, a response status code, usually nothing
// for a Model), minus any "(media-type)" suffix, becomes the name.
func (p *Parser) parsePayloadItem(section classifier.Section) (blueprint.Payload, *Node) {
	item, _ := p.stream.Peek()
	span := item.Span
	node := p.newNode(span)

	descparse.EnterListItem(p.stream)

	var payload blueprint.Payload
	var descLines []string

	if b, ok := p.stream.Peek(); ok && b.Kind == blocklex.Paragraph {
		sig, rest := descparse.SplitFirstLine(string(b.Content))
		if stripped, ok := classifier.StripSectionKeyword(sig, section); ok {
			sig = stripped
		}
		name, mediaType := classifier.ParseMediaTypeSuffix(sig)
		payload.Name = strings.TrimSpace(name)
		payload.MediaType = mediaType
		if node != nil {
			node.Self = sourcemap.Union(node.Self, b.Span)
		}
		if strings.TrimSpace(rest) != "" {
			descLines = append(descLines, strings.TrimSpace(rest))
		}
		p.stream.Advance()
	}

	descparse.EnterList(p.stream)
	for {
		b, ok := p.stream.Peek()
		if !ok || b.Kind != blocklex.ListItemBegin {
			break
		}
		sigText := firstLineOf(p.stream, b)
		switch classifier.ClassifyListItem(sigText, section) {
		case classifier.Headers:
			payload.Headers = p.parseHeadersItem()
		case classifier.Parameters:
			payload.Parameters = p.parseParametersItem()
		case classifier.Body:
			payload.Body = p.parseAssetItem()
			if ref, ok := parseSymbolReference(payload.Body); ok {
				payload.SymbolReference = ref
				payload.Body = ""
			}
		case classifier.Schema:
			payload.Schema = p.parseAssetItem()
		case classifier.Undefined:
			if ref, ok := parseSymbolReference(sigText); ok {
				payload.SymbolReference = ref
				descparse.EnterListItem(p.stream)
				for {
					nb, ok := p.stream.Peek()
					if !ok || nb.Kind == blocklex.ListItemEnd {
						break
					}
					descparse.SkipSubtree(p.stream)
				}
				descparse.CloseItem(p.stream)

				continue
			}
			descLines = append(descLines, descparse.Asset(p.stream, "", p.rep, b.Span))
		default:
			descparse.ForeignListItem(p.rep, b.Span)
			descparse.SkipSubtree(p.stream)
		}
	}
	descparse.CloseList(p.stream)

	payload.Description = strings.Join(descLines, "\n")

	if section == classifier.Response && payload.Body == "" && payload.Schema == "" &&
		payload.SymbolReference == "" && statusImpliesBody(payload.Name) {
		p.rep.Warn(report.EmptyDefinitionWarning, "response '"+payload.Name+"' has no body or schema defined", span)
	}

	if payload.SymbolReference != "" {
		if target, ok := p.symbols.Lookup(payload.SymbolReference); ok {
			resolved := target
			payload.Reference = &resolved
		} else {
			p.rep.Fail(report.BusinessError, "reference to undefined model '"+payload.SymbolReference+"'", span)
		}
	}

	descparse.CloseItem(p.stream)

	return payload, node
}

// parseAssetItem parses a Body/Schema list item's preformatted content:
// the cursor sits at its ListItemBegin.
func (p *Parser) parseAssetItem() string {
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
	descparse.CloseItem(p.stream)

	return asset
}

// statusImpliesBody reports whether an HTTP status code conventionally
// carries a response body: every code except the 1xx, 204, and 304
// classes.
func statusImpliesBody(status string) bool {
	status = strings.TrimSpace(status)
	if len(status) != 3 {
		return true
	}
	if status[0] == '1' {
		return false
	}
	if status == "204" || status == "304" {
		return false
	}

	return true
}

// parseSymbolReference recognizes a bare markdown-link-shaped model
// reference, "[Name]" or "[Name][]", as the entire trimmed text.
func parseSymbolReference(text string) (string, bool) {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "[]")
	text = strings.TrimSpace(text)
	if len(text) < 2 || text[0] != '[' || text[len(text)-1] != ']' {
		return "", false
	}

	name := strings.TrimSpace(text[1 : len(text)-1])
	if name == "" {
		return "", false
	}

	return name, true
}
