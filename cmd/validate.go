package cmd

import (
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/anchore/go-semver/semver"
)

var validateCmd = &cobra.Command{
	Use:   "validate VERSION...",
	Short: "check versions against the strict SemVer 2.0.0 grammar",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runValidateCmd(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidateCmd(_ *cobra.Command, args []string) int {
	exitCode := 0
	for _, raw := range args {
		if _, err := semver.Parse(raw); err != nil {
			color.Red.Printf("invalid: %v\n", err)
			exitCode = 1
			continue
		}
		color.Green.Printf("valid:   %s\n", raw)
	}
	return exitCode
}
