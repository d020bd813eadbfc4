package recipe

import "strings"

// NormalizeDirective trims a line and collapses whitespace so that
// "  #  elif   defined(X)\r" compares equal to "#elif defined(X)".
// Non-directive lines normalize to "".
func NormalizeDirective(line string) string {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "#") {
		return ""
	}
	return "#" + strings.Join(strings.Fields(s[1:]), " ")
}

// DirectiveName returns the preprocessor keyword of line ("elif", "else"),
// or "" when line is not a directive.
func DirectiveName(line string) string {
	s := NormalizeDirective(line)
	if s == "" {
		return ""
	}
	s = s[1:]
	end := strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	})
	if end >= 0 {
		s = s[:end]
	}
	return s
}

// IsConditional reports whether name opens or continues a conditional chain.
func IsConditional(name string) bool {
	switch name {
	case "if", "ifdef", "ifndef", "elif":
		return true
	}
	return false
}
