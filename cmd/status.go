package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yansircc/wppub/internal/config"
	"github.com/yansircc/wppub/internal/profile"
	"github.com/yansircc/wppub/internal/prompt"
	"github.com/yansircc/wppub/internal/secrets"
	"github.com/yansircc/wppub/internal/wp"
)

var flagNoVerify bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured connection and re-verify it",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		conn, err := profile.LoadDefault()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Site:     %s\n", conn.URL)
		fmt.Fprintf(out, "Username: %s\n", conn.Username)
		fmt.Fprintf(out, "API path: %s\n", conn.APIPath)
		if conn.DisplayName != "" {
			fmt.Fprintf(out, "Account:  %s\n", conn.DisplayName)
		}

		if flagNoVerify {
			return nil
		}

		// The secrets CLI is write-only from here; the keyring can be
		// read back. Otherwise ask for the password again.
		appPassword, err := secrets.KeyringStore{}.Get(config.KeyPassword)
		if err != nil || appPassword == "" {
			p := prompt.New(cmd.InOrStdin(), out)
			appPassword = p.Line("\nApplication password (enter to skip): ")
			if appPassword == "" {
				return nil
			}
		}

		name, err := wp.NewClient(conn.URL, conn.Username, appPassword).Verify()
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		fmt.Fprintf(out, "  [ok] connected as %s\n", name)
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&flagNoVerify, "no-verify", false, "Only print the saved profile")
	rootCmd.AddCommand(statusCmd)
}
