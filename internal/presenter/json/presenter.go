package json

import (
	"encoding/json"
	"io"

	"github.com/anchore/go-semver/internal/presenter/models"
)

// Presenter renders version breakdowns as JSON.
type Presenter struct {
	document models.Document
}

// NewPresenter is a *Presenter constructor
func NewPresenter(document models.Document) *Presenter {
	return &Presenter{
		document: document,
	}
}

// Present creates a JSON-based report
func (p *Presenter) Present(output io.Writer) error {
	enc := json.NewEncoder(output)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&p.document)
}
