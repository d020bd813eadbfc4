package buildenv

import "path/filepath"

// PlatformIO directory names under the project directory.
const (
	WorkDir     = ".pio"
	LibDepsDir  = "libdeps"
	BuildDirDir = "build"
)

// Layout holds the project paths an Env is built from. Empty fields fall back
// to the PlatformIO defaults relative to ProjectDir.
type Layout struct {
	ProjectDir string
	Platform   string
	LibDepsDir string
	BuildDir   string
}

// Env returns the environment described by l with defaults applied.
func (l Layout) Env() Env {
	project := l.ProjectDir
	if project == "" {
		project = "."
	}
	libdeps := l.LibDepsDir
	if libdeps == "" {
		libdeps = filepath.Join(project, WorkDir, LibDepsDir)
	} else if !filepath.IsAbs(libdeps) {
		libdeps = filepath.Join(project, libdeps)
	}
	build := l.BuildDir
	if build == "" {
		build = filepath.Join(project, WorkDir, BuildDirDir, l.Platform)
	} else if !filepath.IsAbs(build) {
		build = filepath.Join(project, build)
	}

	env := Env{
		KeyProjectDir: project,
		KeyLibDepsDir: libdeps,
		KeyBuildDir:   build,
	}
	if l.Platform != "" {
		env[KeyPlatform] = l.Platform
	}
	return env
}
