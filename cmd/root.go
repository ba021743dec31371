package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anchore/go-semver/internal"
)

var rootCmd = &cobra.Command{
	Use:   internal.ApplicationName,
	Short: "Parse, compare, and sort Semantic Versioning 2.0.0 strings",
	Long: `A strict SemVer 2.0.0 toolbox:
    semver parse 1.2.3-rc.1+build.5     show the component breakdown
    semver compare 1.2.3 1.2.4          order two versions (-1, 0, or 1)
    semver sort < versions.txt          sort versions by precedence
    semver validate 1.2.3 01.2.3        check inputs against the grammar
`,
}
