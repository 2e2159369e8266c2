// Package env builds deployment .env files from a fixed template.
//
// Three sources are reconciled, from lowest to highest precedence:
//
//   - literal defaults written in the template itself
//   - placeholder values from a flat YAML file (e.g. .env.yml)
//   - values already present in the existing .env file
//
// Build steps:
//
//   - Secrets: any value equal to RANDOM becomes 64 fresh hex characters
//   - Resolve: YAML values, overridden by existing values translated through
//     the EnvKey -> placeholder table
//   - Render: $Placeholder tokens are substituted in a single pass
//   - OverrideExisting: every line whose key exists in the old file takes the
//     old value, including keys the template only has literal defaults for
//   - AppendExtras: keys the template does not know are kept after a marker
//
// Missing input files are treated as empty. Unreadable ones are errors and
// abort the build before anything is written.
package env
