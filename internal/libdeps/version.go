package libdeps

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Metadata files looked up in a library directory, in order.
const (
	LibraryJSON       = "library.json"
	LibraryProperties = "library.properties"
)

// ErrNoVersion is returned when a library directory carries no version metadata.
var ErrNoVersion = errors.New("no library version metadata")

// InstalledVersion returns the version declared by the library installed in
// libDir, reading library.json first and library.properties second.
func InstalledVersion(libDir string) (string, error) {
	if v, err := versionFromJSON(filepath.Join(libDir, LibraryJSON)); err == nil {
		return v, nil
	} else if !errors.Is(err, os.ErrNotExist) && !errors.Is(err, ErrNoVersion) {
		return "", err
	}

	if v, err := versionFromProperties(filepath.Join(libDir, LibraryProperties)); err == nil {
		return v, nil
	} else if !errors.Is(err, os.ErrNotExist) && !errors.Is(err, ErrNoVersion) {
		return "", err
	}

	return "", fmt.Errorf("%s: %w", libDir, ErrNoVersion)
}

// Satisfies reports whether version meets constraint. A leading "v" on
// version is tolerated.
func Satisfies(version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}

func versionFromJSON(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var meta struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	if meta.Version == "" {
		return "", ErrNoVersion
	}
	return meta.Version, nil
}

func versionFromProperties(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), "=")
		if ok && strings.TrimSpace(key) == "version" {
			if v := strings.TrimSpace(value); v != "" {
				return v, nil
			}
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return "", ErrNoVersion
}
