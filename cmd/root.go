package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wppub",
	Short: "WordPress publishing pipeline setup",
	Long:  "Configure a WordPress content-publishing pipeline: verify Application Password credentials, store connection secrets, and scaffold local environment files.",
}

func Execute() error {
	return rootCmd.Execute()
}
