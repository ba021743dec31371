package semver

import "strings"

// Compare returns 0 if v has the same precedence as other, -1 if v is
// lower, and +1 if v is higher, per the SemVer 2.0.0 precedence rules:
// major, minor, and patch compare numerically; a version without a
// pre-release outranks any pre-release of the same version numbers;
// pre-release strings compare identifier by identifier. Build metadata is
// never consulted.
func (v Version) Compare(other Version) int {
	if ret := compareInts(v.major, other.major); ret != 0 {
		return ret
	}
	if ret := compareInts(v.minor, other.minor); ret != 0 {
		return ret
	}
	if ret := compareInts(v.patch, other.patch); ret != 0 {
		return ret
	}
	return comparePreRelease(v.preRelease, other.preRelease)
}

// LessThan reports whether v has lower precedence than other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// GreaterThan reports whether v has higher precedence than other.
func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

// Compare orders a against b per SemVer precedence, returning -1, 0, or 1.
func Compare(a, b Version) int {
	return a.Compare(b)
}

func comparePreRelease(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		// no pre-release outranks any pre-release
		return 1
	case b == "":
		return -1
	}

	identifiersA := strings.Split(a, ".")
	identifiersB := strings.Split(b, ".")

	minLen := len(identifiersA)
	if len(identifiersB) < minLen {
		minLen = len(identifiersB)
	}

	for i := 0; i < minLen; i++ {
		if ret := compareIdentifiers(identifiersA[i], identifiersB[i]); ret != 0 {
			return ret
		}
	}

	// all shared positions matched: the strict prefix sorts lower
	return compareInts(len(identifiersA), len(identifiersB))
}

func compareIdentifiers(a, b string) int {
	if a == b {
		return 0
	}

	aNumeric := isNumeric(a)
	bNumeric := isNumeric(b)

	switch {
	case aNumeric && bNumeric:
		return compareNumericIdentifiers(a, b)
	case aNumeric:
		// numeric identifiers always have lower precedence than alphanumeric
		return -1
	case bNumeric:
		return 1
	}

	if a < b {
		return -1
	}
	return 1
}

// compareNumericIdentifiers orders two digit strings by numeric value
// without materializing bounded integers, so identifiers of any length
// compare correctly. The grammar forbids leading zeros, which makes the
// longer digit string the larger number and reduces equal lengths to a
// byte-wise compare.
func compareNumericIdentifiers(a, b string) int {
	if ret := compareInts(len(a), len(b)); ret != 0 {
		return ret
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
