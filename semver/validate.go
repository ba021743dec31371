package semver

import "strings"

type identifierKind int

const (
	preReleaseKind identifierKind = iota
	buildKind
)

var identifierKindStr = []string{
	"pre-release",
	"build metadata",
}

func (k identifierKind) String() string {
	return identifierKindStr[k]
}

// validateIdentifiers checks a non-empty dot-separated identifier sequence
// against the SemVer grammar: every identifier is non-empty and drawn from
// [0-9A-Za-z-], and (pre-release only) a purely numeric identifier has no
// leading zero unless it is exactly "0".
func validateIdentifiers(value string, kind identifierKind) error {
	for _, identifier := range strings.Split(value, ".") {
		if identifier == "" {
			return newFormatError(value, "empty %s identifier", kind)
		}
		for i := 0; i < len(identifier); i++ {
			if !isIdentifierChar(identifier[i]) {
				return newFormatError(value, "character %q not allowed in %s identifier %q", identifier[i], kind, identifier)
			}
		}
		if kind == preReleaseKind && len(identifier) > 1 && identifier[0] == '0' && isNumeric(identifier) {
			return newFormatError(value, "pre-release numeric identifier %q must not have a leading zero", identifier)
		}
	}
	return nil
}

func isIdentifierChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c == '-':
		return true
	}
	return false
}

// isNumeric reports whether s is one or more decimal digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
