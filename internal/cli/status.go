package cli

import (
	"fmt"
	"io"

	"github.com/pulsekit/prebuild/internal/buildenv"
	"github.com/pulsekit/prebuild/internal/libdeps"
	"github.com/pulsekit/prebuild/internal/patch"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the library header is patched",
	Long:  `Inspect the target header without modifying it and report its patch state.`,
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
		st, err := patch.Inspect(path, r)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Recipe:   %s\n", r.Name)
		fmt.Fprintf(out, "Header:   %s\n", st.Path)
		if !st.Exists {
			fmt.Fprintln(out, "[WARN] header not found (library not installed yet?)")
			return nil
		}

		libDir, err := buildenv.LibraryDir(env, platform, r.Library)
		if err == nil {
			if v, err := libdeps.InstalledVersion(libDir); err == nil {
				fmt.Fprintf(out, "Version:  %s\n", v)
			}
		}

		check(out, st.Patched, "patched", "not patched")
		check(out, st.BackupPresent, "backup at "+st.Backup, "no backup")
		if !st.Patched {
			check(out, st.AnchorPresent, "anchor found", "anchor not found, apply would be a no-op")
		}
		return nil
	},
}

func check(w io.Writer, ok bool, pass, fail string) {
	if ok {
		fmt.Fprintf(w, "[OK]   %s\n", pass)
		return
	}
	fmt.Fprintf(w, "[WARN] %s\n", fail)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
