package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anchore/go-semver/internal/log"
	"github.com/anchore/go-semver/semver"
)

var sortCmdReverse bool

var sortCmd = &cobra.Command{
	Use:   "sort [VERSION...]",
	Short: "sort versions ascending by SemVer precedence",
	Long: `Sorts the given versions (or, with no arguments, one version per line
from stdin) ascending by precedence. Lines that are not valid versions are
skipped with a warning.`,
	RunE: runSortCmd,
}

func init() {
	sortCmd.Flags().BoolVarP(&sortCmdReverse, "reverse", "r", false, "sort descending instead of ascending")

	rootCmd.AddCommand(sortCmd)
}

func runSortCmd(_ *cobra.Command, args []string) error {
	raws := args
	if len(raws) == 0 {
		var err error
		raws, err = readLines(os.Stdin)
		if err != nil {
			return fmt.Errorf("unable to read versions from stdin: %w", err)
		}
	}

	versions := make([]semver.Version, 0, len(raws))
	for _, raw := range raws {
		v, ok := semver.TryParse(raw)
		if !ok {
			log.Warnf("skipping %q: not a valid semantic version", raw)
			continue
		}
		versions = append(versions, v)
	}

	semver.Sort(versions)

	if sortCmdReverse {
		for i, j := 0, len(versions)-1; i < j; i, j = i+1, j-1 {
			versions[i], versions[j] = versions[j], versions[i]
		}
	}

	for _, v := range versions {
		fmt.Println(v)
	}

	return nil
}

func readLines(r *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
