package patch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pulsekit/prebuild/internal/logfields"
	"github.com/pulsekit/prebuild/internal/platform"
	"github.com/pulsekit/prebuild/internal/recipe"
)

// Applier applies recipes to header files on disk. Diagnostics are plain
// text lines written to Out; Logger receives debug detail.
type Applier struct {
	Out    io.Writer
	Logger *slog.Logger
}

// NewApplier returns an Applier writing diagnostics to out. A nil out
// discards them and a nil logger uses slog.Default().
func NewApplier(out io.Writer, logger *slog.Logger) *Applier {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{Out: out, Logger: logger}
}

// Apply patches the header at path with r.
//
// The sequence is: existence check, read, marker gate, one-time backup,
// transform, write. The backup is only created when it does not exist yet,
// so it always holds the content seen before the first patch.
func (a *Applier) Apply(path string, r *recipe.Recipe) Outcome {
	log := a.Logger.With(logfields.Path(path), logfields.Recipe(r.Name))

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.diag("Could not find %s", path)
			log.Debug("header missing")
			return skipped(path, ReasonFileNotFound, fmt.Errorf("%s: %w", path, ErrMissingFile))
		}
		return a.ioFailure(log, path, "stat", err)
	}
	if info.IsDir() {
		return a.ioFailure(log, path, "read", fmt.Errorf("%s is a directory", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return a.ioFailure(log, path, "read", err)
	}
	content := string(data)

	if strings.Contains(content, r.Marker) {
		log.Debug("marker present, nothing to do")
		return Outcome{Status: StatusAlreadyPatched, Path: path}
	}

	backup := r.BackupPath(path)
	created := false
	if !platform.Exists(backup) {
		switch err := platform.CopyFile(path, backup); {
		case err == nil:
			created = true
			log.Debug("backup created", logfields.Backup(backup))
		case errors.Is(err, platform.ErrExists):
		default:
			return a.ioFailure(log, path, "backup", err)
		}
	}

	out, status := Transform(content, r)
	if status != StatusPatched {
		log.Debug("anchor not found, header left unchanged", slog.String("anchor", r.Anchor))
		o := skipped(path, ReasonAnchorNotFound, fmt.Errorf("%s: %q: %w", path, r.Anchor, ErrAnchorNotFound))
		if created {
			o.Backup = backup
		}
		return o
	}

	if err := platform.WriteFile(path, []byte(out)); err != nil {
		return a.ioFailure(log, path, "write", err)
	}

	if r.Description != "" {
		a.diag("Modified %s to %s", path, r.Description)
	} else {
		a.diag("Modified %s", path)
	}
	log.Debug("header patched", logfields.Status(StatusPatched.String()))

	o := Outcome{Status: StatusPatched, Path: path}
	if created {
		o.Backup = backup
	}
	return o
}

func (a *Applier) ioFailure(log *slog.Logger, path, op string, err error) Outcome {
	a.diag("Could not patch %s: %v", path, err)
	log.Debug("patch skipped", slog.String("op", op), logfields.Error(err))
	return skipped(path, op+" failed", fmt.Errorf("%s %s: %w: %w", op, path, ErrIO, err))
}

func (a *Applier) diag(format string, args ...any) {
	fmt.Fprintf(a.Out, format+"\n", args...)
}
