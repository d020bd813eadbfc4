package recipe

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMarkerNotInserted is returned for recipes whose inserted lines do not
	// contain the marker; applying such a recipe would never become a no-op.
	ErrMarkerNotInserted = errors.New("inserted lines do not contain the marker")

	// ErrEmptyMarker is returned for recipes without a marker.
	ErrEmptyMarker = errors.New("marker is empty")

	// ErrAnchorNotDirective is returned when the anchor is not an
	// #if, #ifdef, #ifndef or #elif line.
	ErrAnchorNotDirective = errors.New("anchor is not a conditional directive")

	// ErrInsertNotBranch is returned when the first inserted line does not
	// open a new #elif branch.
	ErrInsertNotBranch = errors.New("first inserted line is not an #elif directive")
)

// check returns the problems schema validation cannot express. Issue paths
// follow the schema's instance locations.
func (r *Recipe) check() []ValidationIssue {
	var issues []ValidationIssue
	add := func(path, keyword string, err error) {
		issues = append(issues, ValidationIssue{Path: path, Keyword: keyword, Message: err.Error(), err: err})
	}

	if !IsConditional(DirectiveName(r.Anchor)) {
		add("/anchor", "directive", fmt.Errorf("%q: %w", r.Anchor, ErrAnchorNotDirective))
	}
	if len(r.Insert) > 0 && DirectiveName(r.Insert[0]) != "elif" {
		add("/insert/0", "directive", fmt.Errorf("%q: %w", r.Insert[0], ErrInsertNotBranch))
	}
	switch {
	case r.Marker == "":
		add("/marker", "marker", ErrEmptyMarker)
	case !strings.Contains(strings.Join(r.Insert, "\n"), r.Marker):
		add("/insert", "marker", ErrMarkerNotInserted)
	}
	return issues
}
