package patch

import (
	"strings"

	"github.com/pulsekit/prebuild/internal/recipe"
)

// Transform applies r to content without touching the filesystem.
//
// Content that already contains the marker is returned unchanged with
// StatusAlreadyPatched, even if it also contains the anchor. Content without
// an anchored block closed by #else is returned unchanged with StatusSkipped.
func Transform(content string, r *recipe.Recipe) (string, Status) {
	if strings.Contains(content, r.Marker) {
		return content, StatusAlreadyPatched
	}

	lines := strings.SplitAfter(content, "\n")
	points := insertionPoints(lines, r.Anchor)
	if len(points) == 0 {
		return content, StatusSkipped
	}

	var b strings.Builder
	b.Grow(len(content) + len(points)*insertSize(r))
	next := 0
	for i, line := range lines {
		if next < len(points) && points[next] == i {
			eol := lineEnding(line)
			for _, ins := range r.Insert {
				b.WriteString(ins)
				b.WriteString(eol)
			}
			next++
		}
		b.WriteString(line)
	}
	return b.String(), StatusPatched
}

// insertionPoints returns the indexes of the #else lines that close each
// block opened by a line matching anchor. Directives nested inside the block
// are skipped by depth; a block that reaches its #endif first is ignored.
func insertionPoints(lines []string, anchor string) []int {
	want := recipe.NormalizeDirective(anchor)
	if want == "" {
		return nil
	}
	var points []int

	for i := 0; i < len(lines); i++ {
		if !strings.HasPrefix(recipe.NormalizeDirective(lines[i]), want) {
			continue
		}

		depth := 0
	scan:
		for j := i + 1; j < len(lines); j++ {
			switch recipe.DirectiveName(lines[j]) {
			case "if", "ifdef", "ifndef":
				depth++
			case "endif":
				if depth == 0 {
					i = j
					break scan
				}
				depth--
			case "else":
				if depth == 0 {
					points = append(points, j)
					i = j
					break scan
				}
			}
		}
	}
	return points
}

func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

func insertSize(r *recipe.Recipe) int {
	n := 0
	for _, ins := range r.Insert {
		n += len(ins) + 2
	}
	return n
}
