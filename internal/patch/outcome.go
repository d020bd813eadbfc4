package patch

import (
	"errors"
	"fmt"
)

// Status is the kind of result an Apply call produced.
type Status int

const (
	StatusPatched Status = iota + 1
	StatusAlreadyPatched
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPatched:
		return "patched"
	case StatusAlreadyPatched:
		return "already-patched"
	case StatusSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Skip reasons.
const (
	ReasonFileNotFound   = "file not found"
	ReasonAnchorNotFound = "anchor not found"
)

var (
	// ErrMissingFile means the target header does not exist.
	ErrMissingFile = errors.New("missing dependency file")
	// ErrAnchorNotFound means no anchored block with a closing #else was found.
	ErrAnchorNotFound = errors.New("anchor not found")
	// ErrIO wraps read, write and backup failures.
	ErrIO = errors.New("patch I/O failure")
)

// Outcome reports what Apply did to one header.
type Outcome struct {
	Status Status
	Path   string

	// Backup is set when this call created the backup file.
	Backup string

	// Reason and Err are set for StatusSkipped.
	Reason string
	Err    error
}

func (o Outcome) String() string {
	if o.Status == StatusSkipped {
		return fmt.Sprintf("%s: %s (%s)", o.Status, o.Path, o.Reason)
	}
	return fmt.Sprintf("%s: %s", o.Status, o.Path)
}

func skipped(path, reason string, err error) Outcome {
	return Outcome{Status: StatusSkipped, Path: path, Reason: reason, Err: err}
}
