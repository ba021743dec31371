package semver

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name: "pre-releases precede the release",
			input: []string{
				"1.2.3",
				"0.1.2",
				"1.2.3-alpha.1",
				"1.2.3-beta",
				"1.2.3-alpha.beta",
				"1.2.3-alpha.gamma",
			},
			expected: []string{
				"0.1.2",
				"1.2.3-alpha.1",
				"1.2.3-alpha.beta",
				"1.2.3-alpha.gamma",
				"1.2.3-beta",
				"1.2.3",
			},
		},
		{
			name: "numeric identifiers sort by value",
			input: []string{
				"1.0.0-beta.11",
				"1.0.0-beta.2",
				"1.0.0-beta.3",
			},
			expected: []string{
				"1.0.0-beta.2",
				"1.0.0-beta.3",
				"1.0.0-beta.11",
			},
		},
		{
			name:     "empty",
			input:    nil,
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var versions []Version
			for _, raw := range test.input {
				v, err := Parse(raw)
				require.NoError(t, err)
				versions = append(versions, v)
			}

			Sort(versions)

			var actual []string
			for _, v := range versions {
				actual = append(actual, v.String())
			}

			for _, d := range deep.Equal(test.expected, actual) {
				t.Errorf("diff: %+v", d)
			}
		})
	}
}
