package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yansircc/wppub/internal/multisite"
	"github.com/yansircc/wppub/internal/prompt"
)

var multisiteCmd = &cobra.Command{
	Use:   "multisite",
	Short: "Plan a multi-site publishing setup",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p := prompt.New(cmd.InOrStdin(), out)

		multisite.RenderMenus(out)
		choice := p.Line("Setup method (A/B/C): ")
		multisite.RenderSuggestions(out, choice)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(multisiteCmd)
}
