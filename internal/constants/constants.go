package constants

// File Names
const (
	EnvFileName     = ".env"
	YAMLFileName    = ".env.yml"
	AppConfigFile   = "envgen.toml"
	LogFileName     = "envgen.log"
	LockFileSuffix  = ".lock"
	TempFilePattern = ".envgen-*.tmp"
)

// Markers written into or recognised in generated files
const (
	// RandomSentinel marks a value that must be replaced by a fresh secret.
	RandomSentinel = "RANDOM"
	// ExtraVarsHeading precedes keys kept from an existing file that the template does not define.
	ExtraVarsHeading = "# Additional variables found in existing .env"
	// ExamplePlaceholderValue is written for every variable in the example YAML file.
	ExamplePlaceholderValue = "foobar"
)

// SecretBytes is the number of random bytes in a generated secret (hex encoded to twice as many characters).
const SecretBytes = 32
