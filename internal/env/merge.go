package env

import (
	"EnvFileGenerator/internal/envutil"
	"strings"
)

// TranslateEnvKeys maps the existing env values that have a placeholder to
// placeholder -> value.
func TranslateEnvKeys(existing *envutil.Mapping) *envutil.Mapping {
	out := envutil.NewMapping()
	if existing == nil {
		return out
	}
	existing.Each(func(key, value string) {
		if name, ok := PlaceholderFor(key); ok {
			out.Set(name, value)
		}
	})
	return out
}

// Resolve builds the placeholder values used for rendering: YAML values,
// overridden by existing env values for the same placeholder.
func Resolve(yamlVars, existing *envutil.Mapping) *envutil.Mapping {
	resolved := envutil.NewMapping()
	resolved.Merge(yamlVars)
	resolved.Merge(TranslateEnvKeys(existing))
	return resolved
}

// OverrideExisting forces existing values onto every assignment line of
// rendered whose key exists in existing, whatever the template produced.
// A line is left untouched only when its value is already written the way
// FormatLine writes it, either bare or double quoted with \" escapes, so
// rebuilding from a previous output is byte-stable.
func OverrideExisting(rendered string, existing *envutil.Mapping) string {
	if existing == nil || existing.Len() == 0 {
		return rendered
	}

	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		key, raw, ok := envutil.SplitLine(line)
		if !ok {
			continue
		}
		want, ok := existing.Get(key)
		if !ok {
			continue
		}
		if writtenAs(raw, want) {
			continue
		}
		lines[i] = envutil.FormatLine(key, want)
	}
	return strings.Join(lines, "\n")
}

// writtenAs reports whether raw is a well-formed encoding of value.
func writtenAs(raw, value string) bool {
	_, formatted, _ := envutil.SplitLine(envutil.FormatLine("_", value))
	return raw == formatted || raw == `"`+strings.ReplaceAll(value, `"`, `\"`)+`"`
}
