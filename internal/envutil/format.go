package envutil

import (
	"regexp"
	"strings"
)

// safeValueRe matches values that can be written without quotes.
var safeValueRe = regexp.MustCompile(`^[A-Za-z0-9_:\-./@]+$`)

// FormatLine serializes a key/value pair as an env file line.
//
//	""               -> KEY=
//	simple-value_1   -> KEY=simple-value_1
//	has space        -> KEY="has space"
//	has"quote        -> KEY="has\"quote"
func FormatLine(key, value string) string {
	if value == "" {
		return key + "="
	}
	if safeValueRe.MatchString(value) {
		return key + "=" + value
	}
	return key + `="` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}
