package cli

import (
	"fmt"

	"github.com/pulsekit/prebuild/internal/recipe"
	"github.com/spf13/cobra"
)

func init() {
	recipeCmd.AddCommand(recipeValidateCmd)
	recipeCmd.AddCommand(recipeShowCmd)
	rootCmd.AddCommand(recipeCmd)
}

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Inspect and validate patch recipes",
}

var recipeValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a recipe file against the recipe schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := recipe.ValidateFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !result.Valid {
			fmt.Fprintf(out, "[FAIL] %s: %s\n", args[0], result.Summary())
			for _, issue := range result.Issues {
				path := issue.Path
				if path == "" {
					path = "(root)"
				}
				fmt.Fprintf(out, "  %s: %s\n", path, issue.Message)
			}
			return fmt.Errorf("recipe %s is invalid", args[0])
		}
		if _, err := recipe.Load(args[0]); err != nil {
			fmt.Fprintf(out, "[FAIL] %s: %v\n", args[0], err)
			return err
		}
		fmt.Fprintf(out, "[OK] %s\n", args[0])
		return nil
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active recipe",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRecipe()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "name:    %s\n", r.Name)
		fmt.Fprintf(out, "library: %s\n", r.Library)
		fmt.Fprintf(out, "header:  %s\n", r.Header)
		if r.LibraryVersion != "" {
			fmt.Fprintf(out, "version: %s\n", r.LibraryVersion)
		}
		fmt.Fprintf(out, "marker:  %s\n", r.Marker)
		fmt.Fprintf(out, "anchor:  %s\n", r.Anchor)
		fmt.Fprintln(out, "insert:")
		for _, line := range r.Insert {
			fmt.Fprintf(out, "  %s\n", line)
		}
		return nil
	},
}
