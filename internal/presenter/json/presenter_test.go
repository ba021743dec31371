package json

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/go-semver/internal/presenter/models"
	"github.com/anchore/go-semver/semver"
)

func TestJsonPresenter(t *testing.T) {
	doc := models.NewDocument([]semver.Version{
		semver.MustParse("1.2.3-alpha.1+build.0123456789abcdef-01"),
		semver.MustParse("0.1.0"),
	})

	var buffer bytes.Buffer
	err := NewPresenter(doc).Present(&buffer)
	require.NoError(t, err)

	var actual models.Document
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &actual))

	assert.Equal(t, doc, actual)
	assert.Equal(t, "alpha.1", actual.Versions[0].PreRelease)
	assert.Equal(t, "build.0123456789abcdef-01", actual.Versions[0].Build)
}
