// Package config loads user-level defaults from ~/.pyproject-setup/config.yaml
// and PYPROJECT_SETUP_* environment variables. Flags always win over these
// defaults; a missing config file is not an error.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	homeDirName = ".pyproject-setup"
	fileName    = "config"
	fileType    = "yaml"
	envPrefix   = "PYPROJECT_SETUP"
)

// Dir returns the path to the config directory (~/.pyproject-setup/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDirName)
	}
	return filepath.Join(home, homeDirName)
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// AuthorName returns the configured default author name, if any.
func AuthorName() string {
	return viper.GetString("author.name")
}

// AuthorEmail returns the configured default author email, if any.
func AuthorEmail() string {
	return viper.GetString("author.email")
}

// DefaultPreset returns the configured default preset key, if any.
func DefaultPreset() string {
	return viper.GetString("preset")
}
