package env

import (
	"EnvFileGenerator/internal/envutil"
	"crypto/rand"
	"io"
)

// Generator turns placeholder values and an existing env mapping into the
// final file content. The zero value uses Template and crypto/rand.
type Generator struct {
	Template string
	Random   io.Reader
}

// Result is the outcome of a generation.
type Result struct {
	Content    string
	Extras     []string // existing keys kept after the marker comment
	Secrets    int      // RANDOM sentinels replaced
	Unresolved []string // placeholders left in the output
}

// Generate runs the full reconciliation. Neither input is modified.
func (g Generator) Generate(yamlVars, existing *envutil.Mapping) (Result, error) {
	tmpl := g.Template
	if tmpl == "" {
		tmpl = Template
	}
	rnd := g.Random
	if rnd == nil {
		rnd = rand.Reader
	}

	existing = cloneOrEmpty(existing)
	yamlVars = cloneOrEmpty(yamlVars)

	// Existing values first, so the translated placeholder and the
	// override pass write the same secret for a key.
	fromExisting, err := MaterializeSecrets(existing, rnd)
	if err != nil {
		return Result{}, err
	}

	resolved := Resolve(yamlVars, existing)
	fromResolved, err := MaterializeSecrets(resolved, rnd)
	if err != nil {
		return Result{}, err
	}

	rendered := Render(tmpl, resolved)
	rendered = OverrideExisting(rendered, existing)

	extras := ExtraKeys(existing, rendered)
	rendered = AppendExtras(rendered, extras)

	content := trimTrailing(rendered) + "\n"
	return Result{
		Content:    content,
		Extras:     extras.Keys(),
		Secrets:    fromExisting + fromResolved,
		Unresolved: UnresolvedPlaceholders(content),
	}, nil
}

func cloneOrEmpty(m *envutil.Mapping) *envutil.Mapping {
	if m == nil {
		return envutil.NewMapping()
	}
	return m.Clone()
}
