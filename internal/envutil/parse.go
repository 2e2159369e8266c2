package envutil

import (
	"strings"
)

// Parse reads KEY=VALUE lines from content into an ordered Mapping.
//
// Rules:
//   - Blank lines and lines starting with '#' are skipped
//   - Lines without '=' are skipped silently
//   - The key is everything before the first '=', trimmed; empty keys are skipped
//   - The value is everything after it, trimmed, with one layer of matching quotes removed
//   - Inside double quotes \" becomes ", so Parse reads back what FormatLine writes
//   - A key defined twice keeps its first position and its last value
func Parse(content string) *Mapping {
	m := NewMapping()
	// Tolerate CRLF files
	content = strings.ReplaceAll(content, "\r\n", "\n")
	for _, line := range strings.Split(content, "\n") {
		key, raw, ok := SplitLine(line)
		if !ok {
			continue
		}
		m.Set(key, Unquote(raw))
	}
	return m
}

// Unquote removes exactly one layer of wrapping quotes from a raw value.
// Double-quoted values also have \" unescaped, which reverses FormatLine.
// Values that are not wrapped in a matching pair are returned unchanged.
func Unquote(raw string) string {
	if len(raw) < 2 {
		return raw
	}

	first, last := raw[0], raw[len(raw)-1]
	switch {
	case first == '\'' && last == '\'':
		return raw[1 : len(raw)-1]
	case first == '"' && last == '"':
		return strings.ReplaceAll(raw[1:len(raw)-1], `\"`, `"`)
	}
	return raw
}
