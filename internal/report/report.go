// Package report accumulates the diagnostics produced while parsing a
// Blueprint: at most one fatal error plus an ordered list of warnings,
// each carrying a source location.
package report

import "github.com/zendesk/snowcrash/internal/sourcemap"

// Code enumerates the stable, observable annotation codes.
type Code uint

const (
	OK Code = iota
	BusinessError
	FormattingWarning
	IgnoringWarning
	RedefinitionWarning
	IndentationWarning
	EmptyDefinitionWarning
	LogicalErrorWarning
	NotSupportedWarning
	AmbiguityWarning
	URIWarning
)

// String returns the canonical name of the code. CLI diagnostics print
// the numeric code, not this name.
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case BusinessError:
		return "BusinessError"
	case FormattingWarning:
		return "FormattingWarning"
	case IgnoringWarning:
		return "IgnoringWarning"
	case RedefinitionWarning:
		return "RedefinitionWarning"
	case IndentationWarning:
		return "IndentationWarning"
	case EmptyDefinitionWarning:
		return "EmptyDefinitionWarning"
	case LogicalErrorWarning:
		return "LogicalErrorWarning"
	case NotSupportedWarning:
		return "NotSupportedWarning"
	case AmbiguityWarning:
		return "AmbiguityWarning"
	case URIWarning:
		return "URIWarning"
	default:
		return "Unknown"
	}
}

// Annotation is a single diagnostic: a message, a code, and the source
// spans it refers to.
type Annotation struct {
	Message  string
	Code     Code
	Location sourcemap.SourceMap
}

// Report is the accumulating error + warning sink for one top-level
// parse. It is owned by the parse invocation that created it; nothing
// outside that invocation mutates it concurrently.
type Report struct {
	Error    *Annotation
	Warnings []Annotation
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// Warn appends a warning annotation, preserving document order.
func (r *Report) Warn(code Code, message string, location sourcemap.SourceMap) {
	r.Warnings = append(r.Warnings, Annotation{
		Message:  message,
		Code:     code,
		Location: location,
	})
}

// Fail sets the report's error if one is not already set. Per spec, at
// most one error is recorded per top-level parse: the first fatal
// condition wins.
func (r *Report) Fail(code Code, message string, location sourcemap.SourceMap) {
	if r.Error != nil {
		return
	}
	r.Error = &Annotation{
		Message:  message,
		Code:     code,
		Location: location,
	}
}

// HasError reports whether a fatal condition has already been recorded.
func (r *Report) HasError() bool {
	return r.Error != nil
}

// ErrorCode returns the report's error code, or OK if there is none. This
// is the value the CLI uses as its process exit code.
func (r *Report) ErrorCode() Code {
	if r.Error == nil {
		return OK
	}

	return r.Error.Code
}
