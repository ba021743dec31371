package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/go-semver/internal/presenter/models"
	"github.com/anchore/go-semver/semver"
)

func TestTablePresenter(t *testing.T) {
	doc := models.NewDocument([]semver.Version{
		semver.MustParse("1.2.3-rc.1+build.5"),
		semver.MustParse("10.20.30"),
	})

	var buffer bytes.Buffer
	err := NewPresenter(doc).Present(&buffer)
	require.NoError(t, err)

	actual := buffer.String()
	assert.Contains(t, actual, "VERSION")
	assert.Contains(t, actual, "PRE-RELEASE")
	assert.Contains(t, actual, "1.2.3-rc.1+build.5")
	assert.Contains(t, actual, "rc.1")
	assert.Contains(t, actual, "build.5")
	assert.Contains(t, actual, "10.20.30")
}
