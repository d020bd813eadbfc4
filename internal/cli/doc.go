// Package cli defines the Cobra command tree for the prebuild CLI. Each file
// registers one top-level command (apply, status, build, etc.) with the root
// command. Commands only parse flags and format output; the patch logic lives
// in the hook and patch packages.
package cli
