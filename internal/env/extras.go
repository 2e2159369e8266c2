package env

import (
	"EnvFileGenerator/internal/constants"
	"EnvFileGenerator/internal/envutil"
	"strings"
)

// ExtraKeys returns the entries of existing whose key is not assigned on any
// line of rendered, in existing's order.
func ExtraKeys(existing *envutil.Mapping, rendered string) *envutil.Mapping {
	extras := envutil.NewMapping()
	if existing == nil {
		return extras
	}
	renderedKeys := envutil.Keys(rendered)
	existing.Each(func(key, value string) {
		if !renderedKeys[key] {
			extras.Set(key, value)
		}
	})
	return extras
}

// AppendExtras adds extras after a blank line and the marker comment.
func AppendExtras(rendered string, extras *envutil.Mapping) string {
	if extras == nil || extras.Len() == 0 {
		return rendered
	}

	var sb strings.Builder
	sb.WriteString(trimTrailing(rendered))
	sb.WriteString("\n\n")
	sb.WriteString(constants.ExtraVarsHeading)
	sb.WriteString("\n")
	extras.Each(func(key, value string) {
		sb.WriteString(envutil.FormatLine(key, value))
		sb.WriteString("\n")
	})
	return sb.String()
}

// trimTrailing removes trailing whitespace, including NUL and vertical tab.
func trimTrailing(s string) string {
	return strings.TrimRight(s, " \t\n\r\x00\x0b")
}
