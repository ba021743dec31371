package models

import "github.com/anchore/go-semver/semver"

// Entry is the reporting shape of a single parsed version.
type Entry struct {
	Raw        string `json:"raw"`
	Major      int    `json:"major"`
	Minor      int    `json:"minor"`
	Patch      int    `json:"patch"`
	PreRelease string `json:"preRelease,omitempty"`
	Build      string `json:"build,omitempty"`
}

// Document represents the report of one or more versions to present.
type Document struct {
	Versions []Entry `json:"versions"`
}

// NewDocument creates a Document from parsed versions, preserving order.
func NewDocument(versions []semver.Version) Document {
	entries := make([]Entry, 0, len(versions))
	for _, v := range versions {
		entries = append(entries, Entry{
			Raw:        v.String(),
			Major:      v.Major(),
			Minor:      v.Minor(),
			Patch:      v.Patch(),
			PreRelease: v.PreRelease(),
			Build:      v.Build(),
		})
	}
	return Document{
		Versions: entries,
	}
}
