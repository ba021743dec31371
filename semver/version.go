// Package semver provides an immutable value type for Semantic Versioning
// 2.0.0 identifiers: parsing, canonical formatting, and total ordering per
// the precedence rules of semver.org. Build metadata is carried and
// formatted but never participates in precedence or equality.
package semver

import (
	"fmt"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// Version is a single Semantic Versioning 2.0.0 value. The zero value is
// "0.0.0". Versions are immutable once constructed and safe to share
// across goroutines.
type Version struct {
	major      int
	minor      int
	patch      int
	preRelease string
	build      string
}

// New creates a Version from explicit components, validating that the
// version numbers are non-negative (otherwise an ArgumentError) and that
// the pre-release and build strings, when non-empty, satisfy the
// identifier grammar (otherwise a FormatError). Empty preRelease and build
// mean the segment is absent.
func New(major, minor, patch int, preRelease, build string) (Version, error) {
	switch {
	case major < 0:
		return Version{}, newArgumentError("major", major)
	case minor < 0:
		return Version{}, newArgumentError("minor", minor)
	case patch < 0:
		return Version{}, newArgumentError("patch", patch)
	}

	if preRelease != "" {
		if err := validateIdentifiers(preRelease, preReleaseKind); err != nil {
			return Version{}, err
		}
	}

	if build != "" {
		if err := validateIdentifiers(build, buildKind); err != nil {
			return Version{}, err
		}
	}

	return Version{
		major:      major,
		minor:      minor,
		patch:      patch,
		preRelease: preRelease,
		build:      build,
	}, nil
}

func (v Version) Major() int {
	return v.major
}

func (v Version) Minor() int {
	return v.minor
}

func (v Version) Patch() int {
	return v.patch
}

// PreRelease returns the pre-release string without the leading hyphen, or
// "" when the version has none.
func (v Version) PreRelease() string {
	return v.preRelease
}

// Build returns the build metadata string without the leading plus, or ""
// when the version has none.
func (v Version) Build() string {
	return v.build
}

// String renders the canonical form "major.minor.patch[-preRelease][+build]".
func (v Version) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", v.major, v.minor, v.patch)
	if v.preRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.preRelease)
	}
	if v.build != "" {
		sb.WriteByte('+')
		sb.WriteString(v.build)
	}
	return sb.String()
}

// Equal reports whether v and other have the same precedence. Build
// metadata is excluded, so versions differing only in build compare equal.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Hash returns a hash consistent with Equal: it is derived from the four
// precedence-relevant fields only, so versions differing only in build
// metadata hash to the same value.
func (v Version) Hash() (uint64, error) {
	return hashstructure.Hash(struct {
		Major      int
		Minor      int
		Patch      int
		PreRelease string
	}{
		Major:      v.major,
		Minor:      v.minor,
		Patch:      v.patch,
		PreRelease: v.preRelease,
	}, hashstructure.FormatV2, nil)
}
