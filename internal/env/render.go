package env

import (
	"EnvFileGenerator/internal/envutil"
	"regexp"
	"strings"
)

// placeholderRe matches $Name tokens.
var placeholderRe = regexp.MustCompile(`\$(\w+)`)

// Render substitutes every $Name token whose name is in values.
// Unknown tokens are left as they are. Substituted text is never rescanned.
func Render(template string, values *envutil.Mapping) string {
	if values == nil {
		return template
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(token string) string {
		if v, ok := values.Get(token[1:]); ok {
			return v
		}
		return token
	})
}

// UnresolvedPlaceholders lists known placeholder names still present on
// assignment lines of a rendered document, in order of first appearance.
func UnresolvedPlaceholders(rendered string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(rendered, "\n") {
		if envutil.KeyOf(line) == "" {
			continue
		}
		for _, match := range placeholderRe.FindAllStringSubmatch(line, -1) {
			name := match[1]
			if isPlaceholder(name) && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
