package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anchore/go-semver/semver"
)

var compareCmd = &cobra.Command{
	Use:   "compare VERSION VERSION",
	Short: "order two versions by SemVer precedence",
	Long: `Prints -1, 0, or 1 if the first version is lower, equal, or higher
than the second, respectively. Build metadata is ignored, per SemVer 2.0.0.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompareCmd,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompareCmd(_ *cobra.Command, args []string) error {
	a, err := semver.Parse(args[0])
	if err != nil {
		return err
	}

	b, err := semver.Parse(args[1])
	if err != nil {
		return err
	}

	fmt.Println(semver.Compare(a, b))

	return nil
}
