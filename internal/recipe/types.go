package recipe

import "github.com/pulsekit/prebuild/internal/buildenv"

// DefaultBackupSuffix is appended to the header path when a recipe sets none.
const DefaultBackupSuffix = ".bak"

// Recipe describes one conditional, idempotent header patch.
type Recipe struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`

	// Library is the directory name of the library under the platform's
	// install root; Header is slash separated and relative to it.
	Library string `yaml:"library" json:"library"`
	Header  string `yaml:"header" json:"header"`

	// LibraryVersion is an optional semver constraint on the installed library.
	LibraryVersion string `yaml:"library_version,omitempty" json:"library_version,omitempty"`

	// Marker is the substring whose presence means the patch is applied.
	Marker string `yaml:"marker" json:"marker"`

	// Anchor is the guard directive that opens the branch to extend. The new
	// branch is inserted in front of the #else that closes it.
	Anchor string `yaml:"anchor" json:"anchor"`

	Insert       []string `yaml:"insert" json:"insert"`
	BackupSuffix string   `yaml:"backup_suffix,omitempty" json:"backup_suffix,omitempty"`
}

// Location returns where the patched header lives inside the install root.
func (r *Recipe) Location() buildenv.HeaderLocation {
	return buildenv.HeaderLocation{Library: r.Library, Header: r.Header}
}

// BackupPath returns the sibling backup path for header.
func (r *Recipe) BackupPath(header string) string {
	suffix := r.BackupSuffix
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}
	return header + suffix
}

func (r *Recipe) applyDefaults() {
	if r.BackupSuffix == "" {
		r.BackupSuffix = DefaultBackupSuffix
	}
}
