package paths

import (
	"EnvFileGenerator/internal/constants"
	"EnvFileGenerator/internal/version"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

var (
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
)

// GetConfigFilePath returns the absolute path to the envgen.toml file.
// It places it in a subdirectory named after the application (e.g., ~/.config/envfilegenerator/envgen.toml).
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), constants.AppConfigFile)
}

// GetConfigDir returns the absolute path to the configuration directory.
func GetConfigDir() string {
	appName := strings.ToLower(version.ApplicationName)
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, appName)
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetStateDir returns the absolute path to the state directory.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return StateHomeOverride
	}
	appName := strings.ToLower(version.ApplicationName)
	return filepath.Join(xdg.StateHome, appName)
}

// GetLogFilePath returns the absolute path to the application log file.
func GetLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.LogFileName)
}

// GetLockFilePath returns the advisory lock file used while writing target.
func GetLockFilePath(target string) string {
	return target + constants.LockFileSuffix
}

// Normalise trims surrounding whitespace from a user supplied path.
// An empty result means no path was given.
func Normalise(path string) string {
	return strings.TrimSpace(path)
}
