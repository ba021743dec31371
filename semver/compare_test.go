package semver

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// version number precedence
		{a: "1.0.0", b: "2.0.0", expected: -1},
		{a: "2.0.0", b: "2.1.0", expected: -1},
		{a: "2.1.0", b: "2.1.1", expected: -1},
		{a: "10.0.0", b: "9.0.0", expected: 1},
		{a: "1.2.3", b: "1.2.3", expected: 0},
		// release outranks pre-release
		{a: "1.0.0-alpha", b: "1.0.0", expected: -1},
		{a: "1.0.0", b: "1.0.0-rc.99", expected: 1},
		// numeric identifiers always have lower precedence than alphanumeric
		{a: "1.0.0-1", b: "1.0.0-alpha", expected: -1},
		{a: "1.0.0-alpha", b: "1.0.0-999", expected: 1},
		// numeric identifiers compare by value, not textually
		{a: "1.0.0-2", b: "1.0.0-11", expected: -1},
		{a: "1.0.0-alpha.9", b: "1.0.0-alpha.10", expected: -1},
		// alphanumeric identifiers compare byte-wise
		{a: "1.0.0-alpha.beta", b: "1.0.0-alpha.gamma", expected: -1},
		{a: "1.0.0-RC", b: "1.0.0-rc", expected: -1},
		// a strict prefix sorts lower
		{a: "1.0.0-alpha", b: "1.0.0-alpha.1", expected: -1},
		{a: "1.0.0-alpha.1.2", b: "1.0.0-alpha.1", expected: 1},
		// build metadata never participates
		{a: "1.0.0+build1", b: "1.0.0+build2", expected: 0},
		{a: "1.0.0-alpha+a", b: "1.0.0-alpha+b", expected: 0},
		{a: "1.0.0+build", b: "1.0.0-alpha", expected: 1},
		// numeric identifiers beyond any fixed-width integer range
		{a: "1.0.0-" + strings.Repeat("9", 30), b: "1.0.0-" + strings.Repeat("9", 31), expected: -1},
		{a: "1.0.0-1" + strings.Repeat("0", 40), b: "1.0.0-9" + strings.Repeat("9", 38), expected: 1},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%s vs %s", test.a, test.b), func(t *testing.T) {
			a := MustParse(test.a)
			b := MustParse(test.b)

			assert.Equal(t, test.expected, a.Compare(b))
			// the order must be antisymmetric
			assert.Equal(t, -test.expected, b.Compare(a))

			assert.Equal(t, test.expected, Compare(a, b))
			assert.Equal(t, test.expected < 0, a.LessThan(b))
			assert.Equal(t, test.expected > 0, a.GreaterThan(b))
		})
	}
}

// the exact precedence chain from semver.org spec item 11
func TestVersion_Compare_SpecPrecedenceChain(t *testing.T) {
	chain := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
	}

	for i := 0; i < len(chain); i++ {
		for j := 0; j < len(chain); j++ {
			expected := compareInts(i, j)
			actual := MustParse(chain[i]).Compare(MustParse(chain[j]))
			assert.Equalf(t, expected, actual, "%s vs %s", chain[i], chain[j])
		}
	}
}
