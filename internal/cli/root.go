package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pulsekit/prebuild/internal/branding"
	"github.com/pulsekit/prebuild/internal/buildenv"
	"github.com/pulsekit/prebuild/internal/config"
	"github.com/pulsekit/prebuild/internal/recipe"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	configPath  string
	verbose     bool
	platformArg string
	libdepsArg  string
	recipeArg   string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` patches installed library headers before a firmware build.

The built-in recipe keeps the SparkFun MAX3010x driver from redefining
I2C_BUFFER_LENGTH on ESP32 targets. The patch is idempotent and the original
header is kept once as <header>.bak.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		slog.SetDefault(newLogger(cmd.ErrOrStderr(), verbose))

		if configPath == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}
			configPath = config.FilePath(wd)
		}
		config.Load(configPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./prebuild.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&platformArg, "platform", "", "Target platform environment (e.g. esp32dev)")
	rootCmd.PersistentFlags().StringVar(&libdepsArg, "libdeps-dir", "", "Dependency install root")
	rootCmd.PersistentFlags().StringVar(&recipeArg, "recipe", "", "Patch recipe file (default: built-in MAX30105/ESP32 recipe)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildEnv returns the build environment from config with flag overrides.
func buildEnv() buildenv.Env {
	layout := config.Layout(configPath)
	if platformArg != "" {
		layout.Platform = platformArg
	}
	if libdepsArg != "" {
		abs, err := filepath.Abs(libdepsArg)
		if err == nil {
			libdepsArg = abs
		}
		layout.LibDepsDir = libdepsArg
	}
	env := layout.Env()
	for _, key := range env.Keys() {
		slog.Debug("build environment", slog.String("key", key), slog.String("value", env.Get(key)))
	}
	return env
}

// loadRecipe returns the recipe named by --recipe or config, or the built-in one.
func loadRecipe() (*recipe.Recipe, error) {
	path := recipeArg
	if path == "" {
		path = config.Get(config.KeyRecipe)
	}
	if path == "" {
		return recipe.Default(), nil
	}
	if !filepath.IsAbs(path) && recipeArg == "" {
		path = filepath.Join(filepath.Dir(configPath), path)
	}
	return recipe.Load(path)
}

// targetPlatform returns the platform the commands operate on.
func targetPlatform(env buildenv.Environment) (string, error) {
	if p := env.Get(buildenv.KeyPlatform); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no target platform: pass --platform or set %s", branding.EnvVar(config.KeyPlatform))
}
