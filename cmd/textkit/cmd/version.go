package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/scenarigo/textkit/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print textkit version",
	Long:  "Prints textkit version.",
	Args:  cobra.ExactArgs(0),
	Run:   printVersion,
}

func printVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s version %s %s %s/%s\n", appName, version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
