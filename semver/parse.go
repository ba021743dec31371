package semver

import (
	"errors"
	"fmt"
	"strconv"
)

const notFound = -1

// Parse reads a strict SemVer 2.0.0 string into a Version. It returns a
// FormatError when the text lacks the two periods delimiting
// major.minor.patch, when a version number is not a non-negative integer,
// or when the pre-release/build segments violate the identifier grammar,
// and an OverflowError when a version number does not fit in an int.
//
// The delimiters are located in a single left-to-right scan: the first two
// periods bound the version numbers, the first hyphen starts the
// pre-release segment, and the first plus starts the build metadata.
// Hyphens seen after the plus belong to the build metadata text, so
// "1.2.3+build-1" has no pre-release segment.
func Parse(raw string) (Version, error) {
	firstDot, secondDot, hyphen, plus := notFound, notFound, notFound, notFound

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '.':
			if firstDot == notFound {
				firstDot = i
			} else if secondDot == notFound {
				secondDot = i
			}
		case '-':
			// once build metadata has started, a hyphen is just an
			// identifier character
			if hyphen == notFound && plus == notFound {
				hyphen = i
			}
		case '+':
			if plus == notFound {
				plus = i
			}
		}
	}

	if firstDot == notFound || secondDot == notFound {
		return Version{}, newFormatError(raw, "expected major.minor.patch form")
	}

	major, err := parseVersionNumber(raw, "major", raw[:firstDot])
	if err != nil {
		return Version{}, err
	}

	minor, err := parseVersionNumber(raw, "minor", raw[firstDot+1:secondDot])
	if err != nil {
		return Version{}, err
	}

	// determine where the patch number ends and slice out the pre-release
	// and build segments based on which markers were found
	patchEnd := len(raw)
	var preRelease, build string
	switch {
	case hyphen != notFound && plus != notFound:
		patchEnd = hyphen
		preRelease = raw[hyphen+1 : plus]
		build = raw[plus+1:]
	case hyphen != notFound:
		patchEnd = hyphen
		preRelease = raw[hyphen+1:]
	case plus != notFound:
		patchEnd = plus
		build = raw[plus+1:]
	}

	patch, err := parseVersionNumber(raw, "patch", raw[secondDot+1:patchEnd])
	if err != nil {
		return Version{}, err
	}

	// an empty segment after a marker would otherwise read as "absent"
	if hyphen != notFound && preRelease == "" {
		return Version{}, newFormatError(raw, "empty pre-release segment")
	}
	if plus != notFound && build == "" {
		return Version{}, newFormatError(raw, "empty build metadata segment")
	}

	return New(major, minor, patch, preRelease, build)
}

// TryParse is the non-failing variant of Parse, reporting failure via the
// second return value and yielding the zero Version in that case.
func TryParse(raw string) (Version, bool) {
	v, err := Parse(raw)
	if err != nil {
		return Version{}, false
	}
	return v, true
}

// MustParse is like Parse but panics on malformed input. It is intended
// for version strings known valid at compile time.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("semver: MustParse(%q): %v", raw, err))
	}
	return v
}

func parseVersionNumber(raw, field, value string) (int, error) {
	if value == "" {
		return 0, newFormatError(raw, "empty %s version number", field)
	}
	// Atoi alone would admit sign characters
	if !isNumeric(value) {
		return 0, newFormatError(raw, "%s version number %q is not a non-negative integer", field, value)
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, newOverflowError(field, value)
		}
		return 0, newFormatError(raw, "unable to parse %s version number %q: %v", field, value, err)
	}

	return n, nil
}
