package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pulsekit/prebuild/internal/branding"
	"github.com/pulsekit/prebuild/internal/buildenv"
	"github.com/pulsekit/prebuild/internal/logfields"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Configuration keys.
const (
	KeyProjectDir = "project_dir"
	KeyPlatform   = "platform"
	KeyLibDepsDir = "libdeps_dir"
	KeyBuildDir   = "build_dir"
	KeyRecipe     = "recipe"
	KeyArtifact   = "artifact"
)

// Keys lists every known configuration key.
var Keys = []string{KeyProjectDir, KeyPlatform, KeyLibDepsDir, KeyBuildDir, KeyRecipe, KeyArtifact}

// FilePath returns the config file path inside dir (<dir>/prebuild.yaml).
func FilePath(dir string) string {
	return filepath.Join(dir, branding.ConfigName()+"."+fileType)
}

// Load initializes Viper to read from path and the environment. A missing
// file is not an error; an unreadable or malformed one is logged at warn
// level and the defaults apply.
func Load(path string) {
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for _, key := range Keys {
		// AutomaticEnv only covers keys Viper already knows about.
		_ = viper.BindEnv(key)
	}

	if err := viper.ReadInConfig(); err != nil && !isNotFound(err) {
		slog.Warn("ignoring config file", logfields.Path(path), logfields.Error(err))
	}
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file at path.
func Set(path, key, value string) error {
	if !isKnown(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	viper.Set(key, value)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", path, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Layout returns the project layout described by the loaded configuration.
// A relative project_dir is resolved against the config file's directory.
func Layout(configPath string) buildenv.Layout {
	project := Get(KeyProjectDir)
	base := filepath.Dir(configPath)
	switch {
	case project == "":
		project = base
	case !filepath.IsAbs(project):
		project = filepath.Join(base, project)
	}
	return buildenv.Layout{
		ProjectDir: project,
		Platform:   Get(KeyPlatform),
		LibDepsDir: Get(KeyLibDepsDir),
		BuildDir:   Get(KeyBuildDir),
	}
}

func isKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
