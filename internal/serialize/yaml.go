package serialize

import (
	"strings"

	"github.com/zendesk/snowcrash/internal/blueprint"
	"gopkg.in/yaml.v3"
)

// quoteTriggerChars are the characters that, anywhere in a string
// scalar, force it to be emitted double-quoted.
const quoteTriggerChars = "#-[]:|>!*&%@`,{}?'"

// YAML renders bp using the fixed key vocabulary, applying the custom
// scalar-quoting rule on top of gopkg.in/yaml.v3's tree-walking
// emitter: any string scalar containing a trigger character, a
// newline, or a double quote is forced into a double-quoted style so
// the emitter escapes it.
func YAML(bp blueprint.Blueprint) ([]byte, error) {
	return marshalQuoted(toBlueprintDTO(bp))
}

func marshalQuoted(v any) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	applyQuotingRule(&node)

	return yaml.Marshal(&node)
}

func needsQuoting(s string) bool {
	return strings.ContainsAny(s, quoteTriggerChars) || strings.ContainsAny(s, "\n\"")
}

// applyQuotingRule walks node and its descendants, forcing every
// plain-style string scalar that matches needsQuoting into a
// double-quoted style.
func applyQuotingRule(node *yaml.Node) {
	if node == nil {
		return
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!str" && needsQuoting(node.Value) {
		node.Style = yaml.DoubleQuotedStyle
	}
	for _, child := range node.Content {
		applyQuotingRule(child)
	}
}
