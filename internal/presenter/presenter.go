package presenter

import (
	"io"

	"github.com/anchore/go-semver/internal/presenter/json"
	"github.com/anchore/go-semver/internal/presenter/models"
	"github.com/anchore/go-semver/internal/presenter/table"
)

// Presenter is the main interface for report formatters.
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option.
func GetPresenter(option Option, doc models.Document) Presenter {
	switch option {
	case TablePresenter:
		return table.NewPresenter(doc)
	case JSONPresenter:
		return json.NewPresenter(doc)
	default:
		return nil
	}
}
