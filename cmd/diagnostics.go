// Package cmd provides the snowcrash command-line interface.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/zendesk/snowcrash/internal/report"
	"github.com/zendesk/snowcrash/internal/sourcemap"
)

// writeDiagnostics prints every annotation in rep to w in the form
// "{error|warning}: (<code>) <message> :<offset>:<length>[;<offset>:<length>...]",
// errors first, then warnings in document order.
func writeDiagnostics(w io.Writer, rep *report.Report) {
	if rep.Error != nil {
		fmt.Fprintln(w, formatAnnotation("error", *rep.Error))
	}
	for _, warn := range rep.Warnings {
		fmt.Fprintln(w, formatAnnotation("warning", warn))
	}
}

func formatAnnotation(kind string, ann report.Annotation) string {
	return fmt.Sprintf("%s: (%d) %s %s", kind, ann.Code, ann.Message, formatLocation(ann.Location))
}

func formatLocation(loc sourcemap.SourceMap) string {
	if len(loc) == 0 {
		return ":0:0"
	}

	parts := make([]string, len(loc))
	for i, r := range loc {
		parts[i] = fmt.Sprintf("%d:%d", r.Offset, r.Length)
	}

	return ":" + strings.Join(parts, ";")
}
