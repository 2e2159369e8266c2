package cmd

import (
	"sync"

	"github.com/spf13/pflag"
)

var initFlagsOnce sync.Once

// InitFlags defines the pflags used for argument validation and help.
// It is safe to call more than once.
func InitFlags() {
	initFlagsOnce.Do(func() {
		// Modifiers
		pflag.BoolP("force", "f", false, "Overwrite files that would otherwise be kept")
		pflag.BoolP("dry-run", "n", false, "Print the result instead of writing it")
		pflag.BoolP("verbose", "v", false, "Verbose output")
		pflag.BoolP("debug", "x", false, "Debug output")
		pflag.BoolP("help", "h", false, "Show help")

		// Generation
		pflag.StringP("build", "b", "", "Build the env file")
		pflag.StringP("diff", "d", "", "Show what a build would change")
		pflag.StringP("example", "E", "", "Write an example YAML file")
		pflag.StringP("check", "c", "", "Check an env file")

		// Information
		pflag.Bool("config-show", false, "Show configuration")
		pflag.Bool("show-config", false, "Show configuration (alias)")
		pflag.BoolP("version", "V", false, "Show version")
	})
}
