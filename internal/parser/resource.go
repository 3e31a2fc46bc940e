package parser

import (
	"strings"

	"github.com/zendesk/snowcrash/internal/blocklex"
	"github.com/zendesk/snowcrash/internal/blueprint"
	"github.com/zendesk/snowcrash/internal/classifier"
	"github.com/zendesk/snowcrash/internal/descparse"
	"github.com/zendesk/snowcrash/internal/report"
)

// parseResource parses one Resource section: the cursor sits at the
// Resource Header block. It consumes blocks up to, but not including,
// the next Header at level <= level.
func (p *Parser) parseResource(level int) (blueprint.Resource, *Node) {
	header, _ := p.stream.Peek()
	name, uri, _ := classifier.ParseResourceSignature(strings.TrimSpace(string(header.Content)))
	p.stream.Advance()

	resource := blueprint.Resource{Name: name, URITemplate: uri}
	node := p.newNode(header.Span)
	if uri != "" && !strings.HasPrefix(uri, "/") {
		p.rep.Warn(report.URIWarning, "resource URI template '"+uri+"' should start with '/'", header.Span)
	}

	var descLines []string

	for {
		b, ok := p.stream.Peek()
		if !ok || p.terminated {
			break
		}
		if b.Kind == blocklex.HRule {
			p.stream.Advance()
			p.terminated = true

			break
		}
		if b.Kind == blocklex.Header {
			if b.Level <= level {
				break
			}
			text := strings.TrimSpace(string(b.Content))
			if classifier.ClassifyHeader(text, classifier.Resource) == classifier.Action {
				act, actNode := p.parseAction(b.Level)
				resource.Actions = append(resource.Actions, act)
				node.addToSequenceField("actions", actNode)

				continue
			}
			descparse.ForeignBlock(p.rep, b.Span)
			p.stream.Advance()

			continue
		}

		switch b.Kind {
		case blocklex.Paragraph:
			descLines = append(descLines, strings.TrimSpace(string(b.Content)))
			p.stream.Advance()
		case blocklex.ListBegin:
			descparse.EnterList(p.stream)

			continue
		case blocklex.ListEnd:
			descparse.CloseList(p.stream)

			continue
		case blocklex.ListItemBegin:
			sigText := firstLineOf(p.stream, b)
			switch classifier.ClassifyListItem(sigText, classifier.Resource) {
			case classifier.Parameters:
				resource.Parameters = p.parseParametersItem()
			case classifier.Headers:
				resource.Headers = p.parseHeadersItem()
			case classifier.Model:
				model, modelNode := p.parsePayloadItem(classifier.Model)
				resource.Model = &model
				node.set("model", modelNode)
			default:
				descparse.ForeignListItem(p.rep, b.Span)
				descparse.SkipSubtree(p.stream)
			}
		default:
			descparse.ForeignBlock(p.rep, b.Span)
			descparse.SkipSubtree(p.stream)
		}
	}

	resource.Description = strings.Join(descLines, "\n")

	for i := range resource.Actions {
		action := &resource.Actions[i]
		action.Headers = mergeHeaders(p.rep, resource.Headers, action.Headers, header.Span)
		action.Parameters = mergeParameters(p.rep, resource.Parameters, action.Parameters, header.Span)
	}

	return resource, node
}
