package buildenv

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	// ErrNoInstallRoot is returned when the environment has no dependency install root.
	ErrNoInstallRoot = errors.New("dependency install root not set")
	// ErrNoPlatform is returned when no target platform was given.
	ErrNoPlatform = errors.New("target platform not set")
)

// HeaderLocation names a header inside an installed library.
// Header is slash separated and relative to the library directory.
type HeaderLocation struct {
	Library string
	Header  string
}

// LibraryDir returns <install root>/<platform>/<library>.
func LibraryDir(env Environment, platform, library string) (string, error) {
	root := env.Get(KeyLibDepsDir)
	if root == "" {
		return "", ErrNoInstallRoot
	}
	if platform == "" {
		return "", ErrNoPlatform
	}
	dir, err := filepath.Abs(filepath.Join(root, platform, library))
	if err != nil {
		return "", fmt.Errorf("resolving library dir for %s: %w", library, err)
	}
	return dir, nil
}

// ResolveHeader returns the absolute path of loc for the given platform.
// It does not check that the file exists.
func ResolveHeader(env Environment, platform string, loc HeaderLocation) (string, error) {
	dir, err := LibraryDir(env, platform, loc.Library)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.FromSlash(loc.Header)), nil
}
