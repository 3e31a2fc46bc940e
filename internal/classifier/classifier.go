// Package classifier decides which section of the Blueprint grammar a
// block — or the signature line of a list item — introduces, given the
// section currently being parsed. Classification is idempotent and
// side-effect-free: it never mutates the block stream.
package classifier

import (
	"strings"
)

// Section tags the kind of grammar section a block introduces.
type Section int

const (
	// Undefined means "continuation of the current section's
	// description": the block/list item is not a recognized keyword.
	Undefined Section = iota
	ResourceGroup
	Resource
	Action
	Headers
	Parameters
	Values
	Body
	Schema
	Request
	Response
	Model
)

// httpMethods is the recognized, uppercase-only set of action verbs.
var httpMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
	"OPTIONS": true, "HEAD": true, "PATCH": true, "TRACE": true,
	"CONNECT": true,
}

// ClassifyHeader classifies a Header block's trimmed content given the
// parent section.
func ClassifyHeader(text string, parent Section) Section {
	text = strings.TrimSpace(text)

	if method, _, ok := ParseActionSignature(text); ok && httpMethods[method] {
		return Action
	}
	if _, uri, ok := ParseResourceSignature(text); ok && uri != "" {
		return Resource
	}
	if parent == Undefined {
		if rest, ok := stripKeyword(text, "Group"); ok {
			_ = rest

			return ResourceGroup
		}
	}

	return Undefined
}

// ParseActionSignature parses "<METHOD>" or "<METHOD> <URI>". The
// method token must already be all-uppercase to match (HTTP methods
// match uppercase only, per spec).
func ParseActionSignature(text string) (method, uri string, ok bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", "", false
	}
	first := fields[0]
	if first == "" || first != strings.ToUpper(first) || !isAllLetters(first) {
		return "", "", false
	}
	if !httpMethods[first] {
		return "", "", false
	}
	if len(fields) == 1 {
		return first, "", true
	}

	return first, strings.Join(fields[1:], " "), true
}

func isAllLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}

// ParseResourceSignature parses "<URI>" or "<Name> [<URI>]"/"<Name>
// [URI_TEMPLATE]".
func ParseResourceSignature(text string) (name, uri string, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", false
	}

	if open := strings.LastIndex(text, "["); open >= 0 && strings.HasSuffix(text, "]") {
		name = strings.TrimSpace(text[:open])
		uri = strings.TrimSpace(text[open+1 : len(text)-1])

		return name, uri, true
	}

	if strings.HasPrefix(text, "/") {
		return "", text, true
	}

	return "", "", false
}

// ParseResourceGroupSignature parses a "Group <Name>" header, returning
// the name.
func ParseResourceGroupSignature(text string) (name string, ok bool) {
	return stripKeyword(strings.TrimSpace(text), "Group")
}

// stripKeyword reports whether text begins with keyword followed by a
// word boundary (space or end of string), case-sensitively, and returns
// the remainder.
func stripKeyword(text, keyword string) (string, bool) {
	if !strings.HasPrefix(text, keyword) {
		return "", false
	}
	rest := text[len(keyword):]
	if rest != "" && rest[0] != ' ' {
		return "", false
	}

	return strings.TrimSpace(rest), true
}

// stripKeywordFold is like stripKeyword but case-insensitive, used for
// list-item keywords per spec (case-insensitive matching there).
func stripKeywordFold(text, keyword string) (string, bool) {
	if len(text) < len(keyword) || !strings.EqualFold(text[:len(keyword)], keyword) {
		return "", false
	}
	rest := text[len(keyword):]
	if rest != "" && rest[0] != ' ' && rest[0] != ':' {
		return "", false
	}
	rest = strings.TrimPrefix(rest, ":")

	return strings.TrimSpace(rest), true
}

// ClassifyListItem classifies a list item from its signature line (the
// first line of its first content block), given the parent section.
func ClassifyListItem(signature string, parent Section) Section {
	signature = strings.TrimSpace(signature)

	if rest, ok := stripKeywordFold(signature, "Headers"); ok {
		_ = rest

		return Headers
	}
	if rest, ok := stripKeywordFold(signature, "Parameters"); ok {
		_ = rest

		return Parameters
	}
	if parent == Parameters {
		if rest, ok := stripKeywordFold(signature, "Values"); ok {
			_ = rest

			return Values
		}
	}
	if rest, ok := stripKeywordFold(signature, "Schema"); ok {
		_ = rest

		return Schema
	}
	if rest, ok := stripKeywordFold(signature, "Body"); ok {
		_ = rest

		return Body
	}
	if _, ok := stripKeywordFold(signature, "Request"); ok {
		return Request
	}
	if _, ok := stripKeywordFold(signature, "Response"); ok {
		return Response
	}
	if _, ok := stripKeywordFold(signature, "Model"); ok {
		return Model
	}

	return Undefined
}

// StripSectionKeyword removes the section-introducing keyword (Request,
// Response, or Model) from a list item's signature line, returning the
// remainder. It reports false, unchanged, for sections whose signature
// carries no leading keyword token (Headers/Parameters: the caller
// already consumed the keyword for classification and never needs the
// remainder; their signature line holds none).
func StripSectionKeyword(signature string, section Section) (string, bool) {
	switch section {
	case Request:
		return stripKeywordFold(signature, "Request")
	case Response:
		return stripKeywordFold(signature, "Response")
	case Model:
		return stripKeywordFold(signature, "Model")
	default:
		return signature, false
	}
}

// ParseMediaTypeSuffix extracts a trailing "(media-type)" annotation
// from a signature remainder, returning the remainder with it stripped
// and the media type (empty if absent).
func ParseMediaTypeSuffix(rest string) (name, mediaType string) {
	rest = strings.TrimSpace(rest)
	if strings.HasSuffix(rest, ")") {
		if open := strings.LastIndex(rest, "("); open >= 0 {
			mediaType = strings.TrimSpace(rest[open+1 : len(rest)-1])
			name = strings.TrimSpace(rest[:open])

			return name, mediaType
		}
	}

	return rest, ""
}
