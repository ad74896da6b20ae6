// Package main is the entry point for the medanswer CLI.
// It answers queries offline against a tree file and seeds trees into Redis/Valkey.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the medanswer CLI.
var rootCmd = &cobra.Command{
	Use:   "medanswer-cli",
	Short: "Answer healthcare questions from a condition/aspect document tree",
	Long: `medanswer-cli works with the same document tree and stopword list as the
medanswer API server.

ask answers a single query offline and prints the JSON answer. seed pushes a
tree file into Redis or Valkey for servers configured with a store source.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
