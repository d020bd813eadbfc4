// Package platform provides cross-platform filesystem helpers used when
// rewriting installed dependency files: metadata-preserving copies and
// permission handling that degrades to a no-op on Windows.
package platform
