package table

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/anchore/go-semver/internal/presenter/models"
)

// Presenter renders version breakdowns as an aligned table.
type Presenter struct {
	document models.Document
}

// NewPresenter is a *Presenter constructor
func NewPresenter(document models.Document) *Presenter {
	return &Presenter{
		document: document,
	}
}

// Present creates a table-based report
func (p *Presenter) Present(output io.Writer) error {
	rows := make([][]string, 0, len(p.document.Versions))
	for _, entry := range p.document.Versions {
		rows = append(rows, []string{
			entry.Raw,
			strconv.Itoa(entry.Major),
			strconv.Itoa(entry.Minor),
			strconv.Itoa(entry.Patch),
			entry.PreRelease,
			entry.Build,
		})
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Version", "Major", "Minor", "Patch", "Pre-Release", "Build"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rows)
	table.Render()

	return nil
}
