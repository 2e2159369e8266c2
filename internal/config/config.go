package config

import (
	"EnvFileGenerator/internal/constants"
	"EnvFileGenerator/internal/paths"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	Paths PathConfig `toml:"paths"`
	Log   LogConfig  `toml:"log"`

	// Path of the file this configuration was loaded from, not saved to TOML
	Source string `toml:"-"`
}

// PathConfig holds the default file locations used when a command is given no paths.
type PathConfig struct {
	YAMLFile   string `toml:"yaml_file"`
	EnvFile    string `toml:"env_file"`
	OutputFile string `toml:"output_file"` // empty means overwrite env_file
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  bool   `toml:"file"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Paths: PathConfig{
			YAMLFile: constants.YAMLFileName,
			EnvFile:  constants.EnvFileName,
		},
		Log: LogConfig{
			Level: "notice",
			File:  true,
		},
	}
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
// Any other variable is taken from the process environment.
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return os.Getenv(varName)
	}
	return os.Expand(val, mapper)
}

// LoadAppConfig reads the configuration file and returns the configuration.
// A missing file is created with defaults. A file that cannot be decoded is
// ignored: defaults are returned together with the decode error so the
// caller can warn about it.
func LoadAppConfig() (AppConfig, error) {
	conf := Default()
	path := paths.GetConfigFilePath()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		loaded := Default()
		if err := toml.Unmarshal(data, &loaded); err != nil {
			conf.Source = path
			return conf.expanded(), fmt.Errorf("invalid configuration in '%s': %w", path, err)
		}
		loaded.Source = path
		return loaded.expanded(), nil
	case errors.Is(err, os.ErrNotExist):
		// Save defaults so the user has something to edit; failure is not fatal
		if saveErr := SaveAppConfig(conf); saveErr == nil {
			conf.Source = path
		}
		return conf.expanded(), nil
	default:
		return conf.expanded(), fmt.Errorf("cannot read configuration '%s': %w", path, err)
	}
}

func (c AppConfig) expanded() AppConfig {
	c.Paths.YAMLFile = ExpandVariables(c.Paths.YAMLFile)
	c.Paths.EnvFile = ExpandVariables(c.Paths.EnvFile)
	c.Paths.OutputFile = ExpandVariables(c.Paths.OutputFile)
	return c
}

// SaveAppConfig writes the configuration to envgen.toml.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// OutputPath returns the configured output file, falling back to the env file.
func (c AppConfig) OutputPath() string {
	if c.Paths.OutputFile != "" {
		return c.Paths.OutputFile
	}
	return c.Paths.EnvFile
}
