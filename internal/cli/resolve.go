package cli

import (
	"fmt"

	"github.com/pulsekit/prebuild/internal/buildenv"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the header path the recipe targets",
	Args:  cobra.NoArgs,
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

		path, err := buildenv.ResolveHeader(env, platform, r.Location())
		if err != nil {
			return fmt.Errorf("resolving header: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
