package commands

import (
	"context"

	"github.com/spf13/cobra"

	"moneybox/internal/app"
)

var (
	envFile  string
	apiURL   string
	email    string
	password string
	appCtx   *app.App
)

func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd builds the command tree. Flags are bound to package state, so
// build one tree per process (or per test).
func NewRootCmd() *cobra.Command {
	envFile, apiURL, email, password, appCtx = "", "", "", "", nil

	root := &cobra.Command{
		Use:           "moneybox",
		Short:         "Moneybox accounts from the terminal",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := app.LoadConfig(files...)
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			if email == "" {
				email = cfg.Email
			}
			if password == "" {
				password = cfg.Password
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env", "", "env file to load (default .env if present)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVarP(&email, "email", "e", "", "login email (or MONEYBOX_EMAIL)")
	root.PersistentFlags().StringVarP(&password, "password", "p", "", "login password (or MONEYBOX_PASSWORD)")

	root.AddCommand(loginCmd(), accountsCmd(), addMoneyCmd(), shellCmd())
	return root
}
