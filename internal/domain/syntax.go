package domain

import "strings"

// CheckSyntax is the local fallback check used when no Jenkins server is
// configured. It is a smoke test, not a parser: it only verifies that the
// file is non-empty and that at least one declaration marker opens a
// statement.
func CheckSyntax(target Target, markers []string) Outcome {
	if strings.TrimSpace(target.Content) == "" {
		return InvalidOutcome("empty file")
	}
	if !hasDeclaration(target.Content, markers) {
		return InvalidOutcome("no pipeline declaration found")
	}
	return ValidOutcome()
}

// hasDeclaration scans for a marker keyword at statement-start position:
// the first token of a line, case-sensitive, optionally followed directly
// by '{' or '('.
func hasDeclaration(content string, markers []string) bool {
	for _, line := range strings.Split(content, "\n") {
		// CRLF files must behave like LF files.
		line = strings.TrimSuffix(line, "\r")
		token := strings.TrimLeft(line, " \t")
		for _, m := range markers {
			if !strings.HasPrefix(token, m) {
				continue
			}
			rest := token[len(m):]
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '{' || rest[0] == '(' {
				return true
			}
		}
	}
	return false
}
