package parser

import (
	"strings"

	"github.com/zendesk/snowcrash/internal/blocklex"
	"github.com/zendesk/snowcrash/internal/blockstream"
	"github.com/zendesk/snowcrash/internal/blueprint"
	"github.com/zendesk/snowcrash/internal/classifier"
	"github.com/zendesk/snowcrash/internal/descparse"
	"github.com/zendesk/snowcrash/internal/report"
	"github.com/zendesk/snowcrash/internal/sourcemap"
	"github.com/zendesk/snowcrash/internal/symboltable"
)

// parseBlueprint parses the entire document from the cursor's initial
// position: leading metadata, the optional API name and description,
// and the resource groups (or bare resources, gathered into an implicit
// unnamed group) that follow.
func (p *Parser) parseBlueprint() (blueprint.Blueprint, *Node) {
	var bp blueprint.Blueprint
	sm := p.newNode(sourcemap.SourceMap{})

	if b, ok := p.stream.Peek(); ok && b.Kind == blocklex.Paragraph {
		pairs, _ := parseMetadataLines(string(b.Content))
		if len(pairs) > 0 {
			bp.Metadata = pairs
			p.stream.Advance()
		}
	}

	if b, ok := p.stream.Peek(); ok && b.Kind == blocklex.Header && b.Level == 1 {
		text := strings.TrimSpace(string(b.Content))
		if classifier.ClassifyHeader(text, classifier.Undefined) == classifier.Undefined {
			bp.Name = text
			p.stream.Advance()
		}
	}
	if bp.Name == "" && p.opts.Has(RequireBlueprintName) {
		p.rep.Fail(report.BusinessError, "API Blueprint requires a top-level API name", sourcemap.SourceMap{})
	}

	var descLines []string
	for {
		b, ok := p.stream.Peek()
		if !ok || p.terminated || b.Kind == blocklex.Header {
			break
		}
		switch b.Kind {
		case blocklex.Paragraph:
			descLines = append(descLines, strings.TrimSpace(string(b.Content)))
			p.stream.Advance()
		case blocklex.HRule:
			p.stream.Advance()
			p.terminated = true
		default:
			descparse.ForeignBlock(p.rep, b.Span)
			descparse.SkipSubtree(p.stream)
		}
	}
	bp.Description = strings.Join(descLines, "\n")

	implicitGroup := -1
	var implicitGroupNode *Node
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
		if b.Kind != blocklex.Header {
			descparse.ForeignBlock(p.rep, b.Span)
			descparse.SkipSubtree(p.stream)

			continue
		}

		text := strings.TrimSpace(string(b.Content))
		switch classifier.ClassifyHeader(text, classifier.Undefined) {
		case classifier.ResourceGroup:
			group, groupNode := p.parseResourceGroup(b.Level)
			bp.ResourceGroups = append(bp.ResourceGroups, group)
			sm.addToSequenceField("resourceGroups", groupNode)
		case classifier.Resource:
			if implicitGroup < 0 {
				bp.ResourceGroups = append(bp.ResourceGroups, blueprint.ResourceGroup{})
				implicitGroup = len(bp.ResourceGroups) - 1
				implicitGroupNode = p.newNode(sourcemap.SourceMap{})
				sm.addToSequenceField("resourceGroups", implicitGroupNode)
			}
			res, resNode := p.parseResource(b.Level)
			group := &bp.ResourceGroups[implicitGroup]
			group.Resources = append(group.Resources, res)
			implicitGroupNode.addToSequenceField("resources", resNode)
		default:
			descparse.ForeignBlock(p.rep, b.Span)
			p.stream.Advance()
		}
	}

	return bp, sm
}

// parseResourceGroup parses a "Group <Name>" section: the cursor sits at
// its Header block. It consumes blocks up to, but not including, the
// next Header at level <= level.
func (p *Parser) parseResourceGroup(level int) (blueprint.ResourceGroup, *Node) {
	header, _ := p.stream.Peek()
	name, _ := classifier.ParseResourceGroupSignature(strings.TrimSpace(string(header.Content)))
	p.stream.Advance()

	group := blueprint.ResourceGroup{Name: name}
	node := p.newNode(header.Span)
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
			if classifier.ClassifyHeader(text, classifier.ResourceGroup) == classifier.Resource {
				res, resNode := p.parseResource(b.Level)
				group.Resources = append(group.Resources, res)
				node.addToSequenceField("resources", resNode)

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
		default:
			descparse.ForeignBlock(p.rep, b.Span)
			descparse.SkipSubtree(p.stream)
		}
	}
	group.Description = strings.Join(descLines, "\n")

	return group, node
}

// prepassModels walks the entire block stream once before the real
// parse, registering every Model section it finds into symbols keyed
// by the enclosing resource's name (or the model's own signature name,
// when it has one). Redefinition with identical content is a warning;
// redefinition with different content is fatal, matching the rule
// applied to every other named construct in the document.
func prepassModels(source []byte, blocks []blocklex.Block, rep *report.Report, symbols *symboltable.SymbolTable) {
	stream := blockstream.New(source, blocks)
	helper := &Parser{stream: stream, rep: report.New(), symbols: symbols}

	currentResourceName := ""

	for !stream.AtEnd() {
		b, ok := stream.Peek()
		if !ok {
			break
		}

		switch b.Kind {
		case blocklex.Header:
			text := strings.TrimSpace(string(b.Content))
			if name, uri, ok := classifier.ParseResourceSignature(text); ok {
				if name == "" {
					name = uri
				}
				currentResourceName = name
			}
			stream.Advance()
		case blocklex.ListBegin:
			descparse.EnterList(stream)
		case blocklex.ListEnd:
			descparse.CloseList(stream)
		case blocklex.ListItemBegin:
			sig := firstLineOf(stream, b)
			if classifier.ClassifyListItem(sig, classifier.Undefined) == classifier.Model {
				payload, _ := helper.parsePayloadItem(classifier.Model)
				name := payload.Name
				if name == "" {
					name = currentResourceName
				}
				registerModel(rep, symbols, name, payload, b.Span)
			} else {
				stream.SkipToSectionEnd(blocklex.ListItemBegin, blocklex.ListItemEnd)
			}
		default:
			if b.Kind.IsBegin() {
				stream.SkipToSectionEnd(b.Kind, b.Kind.Match())
			} else {
				stream.Advance()
			}
		}
	}
}

func registerModel(rep *report.Report, symbols *symboltable.SymbolTable, name string, payload blueprint.Payload, span sourcemap.SourceMap) {
	if name == "" {
		return
	}

	if existing, dup := symbols.Lookup(name); dup {
		if existing.Body != payload.Body || existing.Schema != payload.Schema {
			rep.Fail(report.BusinessError, "model '"+name+"' is redefined with different content", span)
		} else {
			rep.Warn(report.RedefinitionWarning, "model '"+name+"' is defined more than once", span)
		}

		return
	}

	symbols.Define(name, payload)
}
