package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ccadmin",
	Short: "Administrative API for CodeCommit repositories and IAM access",
	Long: `ccadmin runs an internal administrative REST API that manages AWS
CodeCommit repositories, IAM users, IAM groups (teams) and IAM managed
policies, keeping a local registry of their identifiers.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
