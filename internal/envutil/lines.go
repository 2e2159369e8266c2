package envutil

import (
	"strings"
)

// VarLines returns the assignment lines of content, skipping empty lines,
// comments and lines without '='.
func VarLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if _, _, ok := SplitLine(line); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// SplitLine splits an assignment line on its first '=' and returns the
// trimmed key and trimmed raw value. ok is false for blank lines, comments,
// lines without '=' and lines with an empty key.
func SplitLine(line string) (key, rawValue string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	rawKey, rest, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(rawKey)
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(rest), true
}

// KeyOf returns the variable name defined by line, or "" if the line is not an assignment.
func KeyOf(line string) string {
	key, _, _ := SplitLine(line)
	return key
}

// Keys returns the set of variable names assigned anywhere in content.
func Keys(content string) map[string]bool {
	keys := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		if key := KeyOf(line); key != "" {
			keys[key] = true
		}
	}
	return keys
}
