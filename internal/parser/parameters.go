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
)

// parseParametersItem parses a Parameters list item: the cursor sits at
// its ListItemBegin. It expects a nested ListBegin of parameter items
// and returns the parsed Parameters, cursor ending after the section's
// ListItemEnd.
func (p *Parser) parseParametersItem() []blueprint.Parameter {
	descparse.EnterListItem(p.stream)

	if b, ok := p.stream.Peek(); ok && b.Kind == blocklex.Paragraph {
		p.stream.Advance()
	}

	var params []blueprint.Parameter
	seen := map[string]int{}

	descparse.EnterList(p.stream)
	for {
		b, ok := p.stream.Peek()
		if !ok || b.Kind != blocklex.ListItemBegin {
			break
		}
		param := p.parseOneParameter()

		key := strings.ToLower(param.Name)
		if i, dup := seen[key]; dup {
			p.rep.Warn(report.RedefinitionWarning, "parameter '"+param.Name+"' is defined more than once", b.Span)
			params[i] = param

			continue
		}
		seen[key] = len(params)
		params = append(params, param)
	}
	descparse.CloseList(p.stream)
	descparse.CloseItem(p.stream)

	return params
}

// parseOneParameter parses a single parameter list item: the cursor sits
// at its ListItemBegin. The signature line has the form
//
//	name (type, required|optional, `default`) - description
//
// with the parenthetical and description both optional, and may be
// followed by a nested Values list item.
func (p *Parser) parseOneParameter() blueprint.Parameter {
	item, _ := p.stream.Peek()
	span := item.Span

	descparse.EnterListItem(p.stream)

	var param blueprint.Parameter

	if b, ok := p.stream.Peek(); ok && b.Kind == blocklex.Paragraph {
		sig, _ := descparse.SplitFirstLine(string(b.Content))
		param = parseParameterSignature(sig)
		p.stream.Advance()
	}

	if param.Type == "" {
		p.rep.Warn(report.EmptyDefinitionWarning, "parameter '"+param.Name+"' has no type specified", span)
	}

	descparse.EnterList(p.stream)
	for {
		b, ok := p.stream.Peek()
		if !ok || b.Kind != blocklex.ListItemBegin {
			break
		}
		sigText := firstLineOf(p.stream, b)
		if classifier.ClassifyListItem(sigText, classifier.Parameters) == classifier.Values {
			param.Values = p.parseValuesItem()

			continue
		}

		descparse.ForeignListItem(p.rep, b.Span)
		descparse.SkipSubtree(p.stream)
	}
	descparse.CloseList(p.stream)

	if param.Default != "" && len(param.Values) > 0 && !containsValue(param.Values, param.Default) {
		p.rep.Warn(report.LogicalErrorWarning, "default value '"+param.Default+"' is not one of the parameter's values", span)
	}

	descparse.CloseItem(p.stream)

	return param
}

// parseValuesItem parses a Values list item's nested list of literal
// value strings.
func (p *Parser) parseValuesItem() []string {
	descparse.EnterListItem(p.stream)
	if b, ok := p.stream.Peek(); ok && b.Kind == blocklex.Paragraph {
		p.stream.Advance()
	}

	var values []string
	descparse.EnterList(p.stream)
	for {
		b, ok := p.stream.Peek()
		if !ok || b.Kind != blocklex.ListItemBegin {
			break
		}
		descparse.EnterListItem(p.stream)
		if vb, ok := p.stream.Peek(); ok && vb.Kind == blocklex.Paragraph {
			sig, _ := descparse.SplitFirstLine(string(vb.Content))
			values = append(values, unquoteLiteral(strings.TrimSpace(sig)))
			p.stream.Advance()
		}
		for {
			nb, ok := p.stream.Peek()
			if !ok || nb.Kind == blocklex.ListItemEnd {
				break
			}
			descparse.SkipSubtree(p.stream)
		}
		descparse.CloseItem(p.stream)
	}
	descparse.CloseList(p.stream)
	descparse.CloseItem(p.stream)

	return values
}

// mergeParameters merges child parameters over base parameters by name:
// a name present in both is overridden by the child's definition and
// recorded with a RedefinitionWarning (inner scope wins over outer
// scope). Names unique to base are carried through unchanged.
func mergeParameters(rep *report.Report, base, child []blueprint.Parameter, span sourcemap.SourceMap) []blueprint.Parameter {
	if len(child) == 0 {
		return base
	}

	index := map[string]int{}
	merged := make([]blueprint.Parameter, len(base))
	copy(merged, base)
	for i, param := range merged {
		index[strings.ToLower(param.Name)] = i
	}

	for _, param := range child {
		key := strings.ToLower(param.Name)
		if i, ok := index[key]; ok {
			rep.Warn(report.RedefinitionWarning, "parameter '"+param.Name+"' overrides an inherited definition", span)
			merged[i] = param

			continue
		}
		index[key] = len(merged)
		merged = append(merged, param)
	}

	return merged
}

func containsValue(values []string, v string) bool {
	for _, c := range values {
		if c == v {
			return true
		}
	}

	return false
}

// firstLineOf peeks the signature text of a list item without consuming
// it, by looking one block ahead (the item's first content block).
func firstLineOf(s *blockstream.Stream, _ blocklex.Block) string {
	if b, ok := s.PeekAt(1); ok && b.Kind == blocklex.Paragraph {
		sig, _ := descparse.SplitFirstLine(string(b.Content))

		return sig
	}

	return ""
}

// parseParameterSignature parses "name (type, required|optional,
// `default`) - description" into a Parameter. Every clause beyond the
// bare name is optional.
func parseParameterSignature(sig string) blueprint.Parameter {
	sig = strings.TrimSpace(sig)

	name, rest := sig, ""
	if idx := strings.IndexByte(sig, '('); idx >= 0 {
		name = strings.TrimSpace(sig[:idx])
		if close := strings.IndexByte(sig[idx:], ')'); close >= 0 {
			rest = sig[idx+1 : idx+close]
			sig = sig[idx+close+1:]
		}
	} else if idx := strings.Index(sig, " - "); idx >= 0 {
		name = strings.TrimSpace(sig[:idx])
		sig = sig[idx+1:]
	} else {
		sig = ""
	}

	param := blueprint.Parameter{Name: name}

	for _, tok := range strings.Split(rest, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		switch strings.ToLower(tok) {
		case "required":
			param.Use = blueprint.Required
			param.RequiredFlag = true

			continue
		case "optional":
			param.Use = blueprint.Optional
			param.RequiredFlag = false

			continue
		}

		if v, ok := strings.CutPrefix(tok, "default="); ok {
			param.Default = unquoteLiteral(strings.TrimSpace(v))

			continue
		}

		if strings.HasPrefix(tok, "`") && strings.HasSuffix(tok, "`") && len(tok) >= 2 {
			param.Default = unquoteLiteral(tok)

			continue
		}

		if param.Type == "" {
			param.Type = tok
		}
	}

	if desc, ok := splitDescription(sig); ok {
		param.Description = desc
	}

	return param
}

// splitDescription finds a trailing "- description" clause.
func splitDescription(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return strings.TrimSpace(rest), true
	}

	return "", false
}

func unquoteLiteral(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "`") && strings.HasSuffix(s, "`") {
		return s[1 : len(s)-1]
	}

	return s
}
