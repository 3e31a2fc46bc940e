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

// parseAction parses one Action section: the cursor sits at the Action
// Header block itself (already classified by the caller). It consumes
// blocks up to, but not including, the next Header at level <= level.
func (p *Parser) parseAction(level int) (blueprint.Action, *Node) {
	header, _ := p.stream.Peek()
	method, uri, _ := classifier.ParseActionSignature(strings.TrimSpace(string(header.Content)))
	p.stream.Advance()

	action := blueprint.Action{Method: method, Name: uri}
	node := p.newNode(header.Span)

	var descLines []string
	var current *blueprint.TransactionExample
	var currentNode *Node
	requestNames := map[string]bool{}
	responseStatuses := map[string]int{}

	startExample := func() {
		action.Examples = append(action.Examples, blueprint.TransactionExample{})
		current = &action.Examples[len(action.Examples)-1]
		currentNode = p.newNode(sourcemap.SourceMap{})
		node.addToSequenceField("transactions", currentNode)
		requestNames = map[string]bool{}
		responseStatuses = map[string]int{}
	}

	for {
		b, ok := p.stream.Peek()
		if !ok || p.terminated {
			break
		}
		if b.Kind == blocklex.Header && b.Level <= level {
			break
		}
		if b.Kind == blocklex.HRule {
			p.stream.Advance()
			p.terminated = true

			break
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
			section := classifier.ClassifyListItem(sigText, classifier.Action)
			switch section {
			case classifier.Parameters:
				action.Parameters = p.parseParametersItem()
			case classifier.Headers:
				action.Headers = p.parseHeadersItem()
			case classifier.Request:
				if current == nil || len(current.Responses) > 0 {
					startExample()
				}
				req, reqNode := p.parsePayloadItem(classifier.Request)
				key := strings.ToLower(req.Name)
				if requestNames[key] {
					p.rep.Warn(report.AmbiguityWarning, "multiple requests with the same name in one transaction example", b.Span)
				}
				requestNames[key] = true
				current.Requests = append(current.Requests, req)
				currentNode.addToSequenceField("requests", reqNode)
			case classifier.Response:
				if current == nil {
					startExample()
				}
				resp, respNode := p.parsePayloadItem(classifier.Response)
				if i, dup := responseStatuses[resp.Name]; dup {
					p.rep.Warn(report.RedefinitionWarning, "response '"+resp.Name+"' is defined more than once in this transaction example", b.Span)
					current.Responses[i] = resp
					currentNode.replaceInSequenceField("responses", i, respNode)
				} else {
					responseStatuses[resp.Name] = len(current.Responses)
					current.Responses = append(current.Responses, resp)
					currentNode.addToSequenceField("responses", respNode)
				}
			default:
				descparse.ForeignListItem(p.rep, b.Span)
				descparse.SkipSubtree(p.stream)
			}
		default:
			descparse.ForeignBlock(p.rep, b.Span)
			descparse.SkipSubtree(p.stream)
		}
	}

	action.Description = strings.Join(descLines, "\n")

	hasResponse := false
	for _, ex := range action.Examples {
		if len(ex.Responses) > 0 {
			hasResponse = true

			break
		}
	}
	if !hasResponse {
		p.rep.Warn(report.EmptyDefinitionWarning, "action '"+action.Name+"' has no responses defined", header.Span)
	}

	return action, node
}
