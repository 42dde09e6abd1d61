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

var flagKeyring bool

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to a WordPress site and store the credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p := prompt.New(cmd.InOrStdin(), out)

		fmt.Fprintln(out, "WordPress connection setup")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "You need an Application Password (not your login password):")
		fmt.Fprintln(out, "  1. Log in to wp-admin and open Users -> Profile")
		fmt.Fprintln(out, "  2. Scroll to \"Application Passwords\"")
		fmt.Fprintln(out, "  3. Enter a name like \"wppub\" and click \"Add New\"")
		fmt.Fprintln(out, "  4. Copy the generated password (spaces included are fine)")
		fmt.Fprintln(out)

		siteURL := wp.NormalizeURL(p.Line("Site URL (e.g. https://example.com): "))
		username := p.Line("Username: ")
		appPassword := p.Line("Application password: ")

		fmt.Fprintln(out, "\nVerifying credentials...")
		client := wp.NewClient(siteURL, username, appPassword)
		name, err := client.Verify()
		if err != nil {
			fmt.Fprintf(out, "Connection failed: %v\n\n", err)
			fmt.Fprintln(out, "Troubleshooting:")
			fmt.Fprintln(out, "  - Check the URL includes https:// and points at the WordPress root")
			fmt.Fprintln(out, "  - Make sure you pasted an Application Password, not your login password")
			fmt.Fprintln(out, "  - A security plugin may be blocking the REST API; allow /wp-json/")
			return fmt.Errorf("credential verification failed")
		}
		fmt.Fprintf(out, "  [ok] connected as %s\n\n", name)

		store := pickStore(flagKeyring)
		fmt.Fprintf(out, "Storing secrets via %s...\n", store.Name())
		creds := secrets.Credentials{URL: client.SiteURL, Username: username, Password: appPassword}
		if err := secrets.SetAll(store, creds, out); err != nil {
			return err
		}

		conn := &profile.Connection{
			URL:         client.SiteURL,
			Username:    username,
			APIPath:     config.APIPath,
			DisplayName: name,
		}
		if err := profile.Save(config.BaseDir(), conn); err != nil {
			return fmt.Errorf("save connection profile: %w", err)
		}

		fmt.Fprintln(out, "\nConnection configured.")
		return nil
	},
}

// pickStore prefers the external secrets CLI, falling back to the OS
// keyring when the CLI is missing or --keyring was passed.
func pickStore(forceKeyring bool) secrets.Store {
	if forceKeyring || !secrets.CLIAvailable() {
		return secrets.KeyringStore{}
	}
	return secrets.NewCLIStore()
}

func init() {
	connectCmd.Flags().BoolVar(&flagKeyring, "keyring", false, "Store secrets in the OS keyring instead of the secrets CLI")
	rootCmd.AddCommand(connectCmd)
}
