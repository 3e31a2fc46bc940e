package parser

import (
	"strings"

	"github.com/zendesk/snowcrash/internal/blueprint"
)

// parseMetadataLines parses zero or more leading "KEY: VALUE" lines from
// content, stopping at the first line that does not match. It returns
// the parsed pairs and whether every line of content was consumed, so
// the caller can tell whether the whole block was metadata or only a
// prefix of it.
func parseMetadataLines(content string) (pairs []blueprint.KeyValue, consumedAll bool) {
	lines := strings.Split(content, "\n")
	// Trailing empty line from a final newline doesn't count as content.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for _, line := range lines {
		key, value, ok := splitKeyValue(line)
		if !ok {
			return pairs, false
		}
		pairs = append(pairs, blueprint.KeyValue{Key: key, Value: value})
	}

	return pairs, true
}

// splitKeyValue splits "KEY: VALUE" at the first colon. A line with no
// colon, or an empty key, does not match.
func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	if key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(line[idx+1:])

	return key, value, true
}
