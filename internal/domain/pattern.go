package domain

import (
	"regexp"
	"strings"
)

// Match reports whether path matches a shell-glob pattern evaluated against
// the full path string: '*' matches any run of characters including path
// separators, '?' a single character, '[...]' a character class. Invalid
// glob syntax never matches and never errors.
func Match(path, pattern string) bool {
	re, err := regexp.Compile(globToRegexp(pattern))
	if err != nil {
		return false
	}
	return re.MatchString(path)
}

// MatchAny reports whether any of the patterns matches path.
func MatchAny(path string, patterns []string) bool {
	for _, p := range patterns {
		if Match(path, p) {
			return true
		}
	}
	return false
}

func globToRegexp(pattern string) string {
	var b strings.Builder
	b.WriteString(`^`)
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			j := i + 1
			if j < len(runes) && (runes[j] == '!' || runes[j] == '^') {
				j++
			}
			if j < len(runes) && runes[j] == ']' {
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				// Unterminated class: emit it raw so compilation
				// fails and the pattern matches nothing.
				b.WriteString(string(runes[i:]))
				i = len(runes)
				break
			}
			class := string(runes[i+1 : j])
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString(`[` + class + `]`)
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`$`)
	return b.String()
}
