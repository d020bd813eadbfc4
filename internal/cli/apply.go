package cli

import (
	"fmt"
	"log/slog"

	"github.com/pulsekit/prebuild/internal/hook"
	"github.com/spf13/cobra"
)

var applyQuiet bool

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Patch the library header now",
	Long: `Resolve the library header for the target platform and apply the recipe.

A missing header, an unmatched anchor or an I/O failure is reported and
skipped; the command still exits successfully so builds are never blocked.`,
	Args: cobra.NoArgs,
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

		o := hook.Run(env, hook.Options{
			Platform: platform,
			Recipe:   r,
			Out:      cmd.OutOrStdout(),
			Logger:   slog.Default(),
		})
		if !applyQuiet {
			fmt.Fprintln(cmd.OutOrStdout(), o.String())
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().BoolVarP(&applyQuiet, "quiet", "q", false, "Only print diagnostics, not the outcome line")
	rootCmd.AddCommand(applyCmd)
}
