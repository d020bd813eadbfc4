package patch

import (
	"fmt"
	"os"
	"strings"

	"github.com/pulsekit/prebuild/internal/platform"
	"github.com/pulsekit/prebuild/internal/recipe"
)

// State describes a header as seen on disk.
type State struct {
	Path          string
	Backup        string
	Exists        bool
	Patched       bool
	BackupPresent bool
	AnchorPresent bool
}

// Inspect reads the header at path without modifying anything.
func Inspect(path string, r *recipe.Recipe) (State, error) {
	st := State{Path: path, Backup: r.BackupPath(path)}
	st.BackupPresent = platform.Exists(st.Backup)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("reading %s: %w", path, err)
	}
	st.Exists = true

	content := string(data)
	st.Patched = strings.Contains(content, r.Marker)
	st.AnchorPresent = len(insertionPoints(strings.SplitAfter(content, "\n"), r.Anchor)) > 0
	return st, nil
}
