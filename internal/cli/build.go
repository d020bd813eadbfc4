package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/pulsekit/prebuild/internal/buildenv"
	"github.com/pulsekit/prebuild/internal/config"
	"github.com/pulsekit/prebuild/internal/hook"
	"github.com/pulsekit/prebuild/internal/pipeline"
	"github.com/spf13/cobra"
)

var buildArtifact string

var buildCmd = &cobra.Command{
	Use:   "build -- <command> [args...]",
	Short: "Run a build command with the header patch as its pre-action",
	Long: `Run the given build command as the action producing the main object file.
The header patch is registered as that artifact's pre-action, so it runs once,
right before the command starts. Patch failures never stop the build; the exit
status is the build command's.

Example:
  prebuild build --platform esp32dev -- pio run -e esp32dev`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := buildEnv()
		platform, err := targetPlatform(env)
		if err != nil {
			return err
		}
		r, err := loadRecipe()
		if err != nil {
			return err
		}

		artifact := buildArtifact
		if artifact == "" {
			artifact = config.Get(config.KeyArtifact)
		}
		if artifact == "" {
			artifact = pipeline.DefaultArtifact
		}

		g := pipeline.NewGraph(env, slog.Default())
		g.AddTarget(artifact, func(ctx context.Context, env buildenv.Environment) error {
			c := exec.CommandContext(ctx, args[0], args[1:]...)
			c.Dir = env.Get(buildenv.KeyProjectDir)
			c.Stdin = cmd.InOrStdin()
			c.Stdout = cmd.OutOrStdout()
			c.Stderr = cmd.ErrOrStderr()
			return c.Run()
		})
		hook.Install(g, hook.Options{
			Platform: platform,
			Artifact: artifact,
			Recipe:   r,
			Out:      cmd.OutOrStdout(),
			Logger:   slog.Default(),
		})

		slog.Debug("build graph", slog.Any("targets", g.Targets()))
		if err := g.Build(cmd.Context()); err != nil {
			return fmt.Errorf("build failed: %w", err)
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildArtifact, "artifact", "", "Artifact selector the patch runs before (default $BUILD_DIR/src/main.cpp.o)")
	rootCmd.AddCommand(buildCmd)
}
