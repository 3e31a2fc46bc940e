package parser

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/zendesk/snowcrash/internal/report"
)

// S1: punctuation-heavy resource name and URI template, no warnings.
func TestParseIdentifierPunctuation(t *testing.T) {
	source := "# Parcel's sticker @#!$%^&*=-?><,.~`\"' [/]\n"
	result := Parse([]byte(source), 0, nil)

	assert.False(t, result.Report.HasError())
	assert.Equal(t, 0, len(result.Report.Warnings))
	assert.Equal(t, 1, len(result.Node.ResourceGroups))
	assert.Equal(t, 1, len(result.Node.ResourceGroups[0].Resources))

	res := result.Node.ResourceGroups[0].Resources[0]
	assert.Equal(t, "Parcel's sticker @#!$%^&*=-?><,.~`\"'", res.Name)
	assert.Equal(t, "/", res.URITemplate)
	assert.Equal(t, 0, len(res.Actions))
}

// S2: non-ASCII resource name survives byte-oriented parsing untouched.
func TestParseNonASCIIName(t *testing.T) {
	source := "# Категории [/]\n"
	result := Parse([]byte(source), 0, nil)

	assert.False(t, result.Report.HasError())
	assert.Equal(t, 0, len(result.Report.Warnings))
	res := result.Node.ResourceGroups[0].Resources[0]
	assert.Equal(t, "Категории", res.Name)
	assert.Equal(t, "/", res.URITemplate)
}

// S4: a resource-level header redefined at the action level produces a
// single RedefinitionWarning, and the action's effective value wins.
func TestParseHeaderInheritanceOverride(t *testing.T) {
	source := "" +
		"# /1\n\n" +
		"+ Headers\n\n" +
		"        ```\n" +
		"        X-Header: A\n" +
		"        ```\n\n" +
		"## GET\n\n" +
		"+ Headers\n\n" +
		"        ```\n" +
		"        X-Header: B\n" +
		"        ```\n\n" +
		"+ Response 200\n"

	result := Parse([]byte(source), 0, nil)

	redefs := 0
	for _, w := range result.Report.Warnings {
		if w.Code == report.RedefinitionWarning {
			redefs++
		}
	}
	assert.Equal(t, 1, redefs)

	action := result.Node.ResourceGroups[0].Resources[0].Actions[0]
	assert.Equal(t, 1, len(action.Headers))
	assert.Equal(t, "X-Header", action.Headers[0].Key)
	assert.Equal(t, "B", action.Headers[0].Value)
}

// S5: an HRule silently terminates the enclosing resource; nothing
// after it is visited, so no warnings are raised and no actions exist.
func TestParseHRuleTerminatesResource(t *testing.T) {
	source := "# /1\n---\nA"
	result := Parse([]byte(source), 0, nil)

	assert.False(t, result.Report.HasError())
	assert.Equal(t, 0, len(result.Report.Warnings))
	assert.Equal(t, 1, len(result.Node.ResourceGroups[0].Resources))

	res := result.Node.ResourceGroups[0].Resources[0]
	assert.Equal(t, "/1", res.URITemplate)
	assert.Equal(t, "", res.Description)
	assert.Equal(t, 0, len(res.Actions))
}

// S6: a model redefined with different content across two parses that
// share a pre-populated symbol table is a fatal BusinessError on the
// second parse.
func TestParseModelRedefinitionAcrossParses(t *testing.T) {
	first := "" +
		"# /widgets\n\n" +
		"+ Model\n\n" +
		"  + Body\n\n" +
		"        ```\n" +
		"        {\"id\": 1}\n" +
		"        ```\n"

	firstResult := Parse([]byte(first), 0, nil)
	assert.False(t, firstResult.Report.HasError())

	second := "" +
		"# /widgets\n\n" +
		"+ Model\n\n" +
		"  + Body\n\n" +
		"        ```\n" +
		"        {\"id\": 2}\n" +
		"        ```\n"

	secondResult := Parse([]byte(second), 0, firstResult.Symbols)
	assert.True(t, secondResult.Report.HasError())
	assert.Equal(t, report.BusinessError, secondResult.Report.ErrorCode())
}

func TestParseRequiresNameWhenFlagSet(t *testing.T) {
	result := Parse([]byte("# /1\n"), RequireBlueprintName, nil)
	assert.True(t, result.Report.HasError())
	assert.Equal(t, report.BusinessError, result.Report.ErrorCode())
}

func TestParseNestedGroupResourceActionResponse(t *testing.T) {
	source := "" +
		"# Group Widgets\n\n" +
		"## /widgets\n\n" +
		"### GET\n\n" +
		"+ Response 200\n\n" +
		"  + Body\n\n" +
		"        ```\n" +
		"        {}\n" +
		"        ```\n"

	result := Parse([]byte(source), 0, nil)
	assert.False(t, result.Report.HasError())
	assert.Equal(t, "Widgets", result.Node.ResourceGroups[0].Name)
	assert.Equal(t, "/widgets", result.Node.ResourceGroups[0].Resources[0].URITemplate)
	action := result.Node.ResourceGroups[0].Resources[0].Actions[0]
	assert.Equal(t, "GET", action.Method)
	assert.Equal(t, "200", action.Examples[0].Responses[0].Name)
	assert.Equal(t, "{}", strings.TrimSpace(action.Examples[0].Responses[0].Body))
}
