package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yansircc/wppub/internal/config"
	"github.com/yansircc/wppub/internal/template"
)

var flagCheck bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Scaffold .env.local, .env.example and .gitignore",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if flagCheck {
			missing, err := template.MissingKeys(config.EnvLocalFile, config.EnvExampleFile)
			if err != nil {
				return err
			}
			if len(missing) == 0 {
				fmt.Fprintln(out, "  [ok] .env.local has every key from .env.example")
				return nil
			}
			fmt.Fprintln(out, "Missing from .env.local:")
			for _, k := range missing {
				fmt.Fprintf(out, "  - %s\n", k)
			}
			return fmt.Errorf("%d key(s) missing", len(missing))
		}

		written, err := template.WriteEnvLocal(config.EnvLocalFile)
		if err != nil {
			return fmt.Errorf("write %s: %w", config.EnvLocalFile, err)
		}
		if written {
			fmt.Fprintf(out, "  [ok] %s created\n", config.EnvLocalFile)
		} else {
			fmt.Fprintf(out, "  [ok] %s already exists, left untouched\n", config.EnvLocalFile)
		}

		if err := template.WriteEnvExample(config.EnvExampleFile); err != nil {
			return fmt.Errorf("write %s: %w", config.EnvExampleFile, err)
		}
		fmt.Fprintf(out, "  [ok] %s written\n", config.EnvExampleFile)

		changed, err := template.EnsureGitignore(config.GitignoreFile)
		if err != nil {
			return fmt.Errorf("update %s: %w", config.GitignoreFile, err)
		}
		if changed {
			fmt.Fprintf(out, "  [ok] %s updated with env ignore patterns\n", config.GitignoreFile)
		} else {
			fmt.Fprintf(out, "  [ok] %s already ignores env files\n", config.GitignoreFile)
		}

		n, err := template.CountSettings(config.EnvLocalFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d settings loaded from %s. Fill in the placeholders,\n", n, config.EnvLocalFile)
		fmt.Fprintln(out, "then run `wppub connect` to verify and store the WordPress credentials.")
		return nil
	},
}

func init() {
	envCmd.Flags().BoolVar(&flagCheck, "check", false, "Compare .env.local keys against .env.example instead of scaffolding")
	rootCmd.AddCommand(envCmd)
}
