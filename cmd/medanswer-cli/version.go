package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/medanswer/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of medanswer-cli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "medanswer-cli %s (%s, %s)\n", version.Version, version.Commit, version.Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
