package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "market-marts",
	Short: "Staging and mart transformations for the market-data warehouse",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(migrateCmd)
}
