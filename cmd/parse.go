package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anchore/go-semver/internal/presenter"
	"github.com/anchore/go-semver/internal/presenter/models"
	"github.com/anchore/go-semver/semver"
)

var parseCmdOutput string

var parseCmd = &cobra.Command{
	Use:   "parse VERSION...",
	Short: "show the component breakdown of one or more versions",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParseCmd,
}

func init() {
	parseCmd.Flags().StringVarP(
		&parseCmdOutput, "output", "o", presenter.TablePresenter.String(),
		fmt.Sprintf("report output formatter, options=%v", presenter.Options),
	)

	rootCmd.AddCommand(parseCmd)
}

func runParseCmd(_ *cobra.Command, args []string) error {
	presenterType := presenter.ParseOption(parseCmdOutput)
	if presenterType == presenter.UnknownPresenter {
		return fmt.Errorf("cannot find an output presenter for option: %s", parseCmdOutput)
	}

	versions := make([]semver.Version, 0, len(args))
	for _, raw := range args {
		v, err := semver.Parse(raw)
		if err != nil {
			return err
		}
		versions = append(versions, v)
	}

	doc := models.NewDocument(versions)
	if err := presenter.GetPresenter(presenterType, doc).Present(os.Stdout); err != nil {
		return fmt.Errorf("could not format parse results: %w", err)
	}

	return nil
}
