package semver

import "sort"

var _ sort.Interface = (Collection)(nil)

// Collection implements sort.Interface over versions by precedence.
type Collection []Version

func (c Collection) Len() int {
	return len(c)
}

func (c Collection) Less(i, j int) bool {
	return c[i].Compare(c[j]) < 0
}

func (c Collection) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

// Sort sorts versions in place, ascending by precedence.
func Sort(versions []Version) {
	sort.Sort(Collection(versions))
}
