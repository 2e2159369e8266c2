package env

import (
	"EnvFileGenerator/internal/constants"
	"EnvFileGenerator/internal/envutil"
	"os"

	"github.com/joho/godotenv"
)

// CheckReport describes problems found in a rendered env file.
type CheckReport struct {
	Unresolved []string // placeholders that never received a value
	Sentinels  []string // keys still set to RANDOM
	Divergent  []string // keys a standard dotenv loader reads differently

	// LoaderError is set when a standard dotenv loader rejects the file;
	// every key is then counted as divergent.
	LoaderError string
}

// OK reports whether the file is ready to deploy. Divergent keys are only a
// warning, but a file standard loaders cannot read is not ready.
func (r CheckReport) OK() bool {
	return len(r.Unresolved) == 0 && len(r.Sentinels) == 0 && r.LoaderError == ""
}

// Check audits content. Divergent keys are those where godotenv, which
// expands $VAR references and strips inline comments, would load a value
// other than the one written.
func Check(content string) CheckReport {
	report := CheckReport{
		Unresolved: UnresolvedPlaceholders(content),
	}

	ours := envutil.Parse(content)
	ours.Each(func(key, value string) {
		if value == constants.RandomSentinel {
			report.Sentinels = append(report.Sentinels, key)
		}
	})

	theirs, err := godotenv.Unmarshal(content)
	if err != nil {
		report.LoaderError = err.Error()
		report.Divergent = ours.Keys()
		return report
	}
	ours.Each(func(key, value string) {
		if loaded, ok := theirs[key]; !ok || loaded != value {
			report.Divergent = append(report.Divergent, key)
		}
	})
	return report
}

// CheckFile audits the env file at path.
func CheckFile(path string) (CheckReport, error) {
	target, err := RequirePath("env file", path)
	if err != nil {
		return CheckReport{}, err
	}
	data, err := os.ReadFile(target)
	if err != nil {
		return CheckReport{}, &ReadError{Path: target, Err: err}
	}
	return Check(string(data)), nil
}
