package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "EnvFileGenerator"

// CommandName is the name of the executable command (e.g., "envgen").
// It is initialized dynamically from the executable filename.
var CommandName = "envgen"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X EnvFileGenerator/internal/version.Version=v1.YYYYMMDD.N"
var Version = "v0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

func init() {
	CommandName = commandNameFrom(os.Args[0])
}

// commandNameFrom derives the command name from an executable path.
// Dev runs and test binaries fall back to "envgen".
func commandNameFrom(exePath string) string {
	baseName := filepath.Base(exePath)
	// Strip extension (e.g., .exe on Windows, .test for go test binaries)
	ext := filepath.Ext(baseName)
	name := strings.TrimSuffix(baseName, ext)

	if ext == ".test" || strings.EqualFold(name, ApplicationName) || strings.EqualFold(name, "main") {
		return "envgen"
	}
	return name
}
