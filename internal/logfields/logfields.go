// Package logfields holds the canonical slog attribute names used across
// prebuild so log lines stay greppable.
package logfields

import "log/slog"

const (
	KeyPath     = "path"
	KeyBackup   = "backup"
	KeyRecipe   = "recipe"
	KeyPlatform = "platform"
	KeyArtifact = "artifact"
	KeyStatus   = "status"
	KeyReason   = "reason"
	KeyVersion  = "version"
	KeyError    = "error"
)

func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Backup(p string) slog.Attr { return slog.String(KeyBackup, p) }
func Recipe(name string) slog.Attr { return slog.String(KeyRecipe, name) }
func Platform(p string) slog.Attr { return slog.String(KeyPlatform, p) }
func Artifact(a string) slog.Attr { return slog.String(KeyArtifact, a) }
func Status(s string) slog.Attr { return slog.String(KeyStatus, s) }
func Reason(r string) slog.Attr { return slog.String(KeyReason, r) }
func Version(v string) slog.Attr { return slog.String(KeyVersion, v) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
