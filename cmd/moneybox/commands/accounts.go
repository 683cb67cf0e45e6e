package commands

import (
	"context"

	"github.com/spf13/cobra"

	"moneybox/internal/domain"
	"moneybox/internal/viewmodels/accounts"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List accounts with their plan and moneybox values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newPrinter(cmd.OutOrStdout())
			name, err := signIn(cmd.Context(), out)
			if err != nil {
				return err
			}
			_, err = listAccounts(cmd.Context(), out, name)
			return err
		},
	}
	return cmd
}

// listAccounts fetches and prints the account list, returning it for
// follow-up commands.
func listAccounts(ctx context.Context, out *printer, name string) ([]domain.ProductResponse, error) {
	vm := appCtx.NewAccounts()
	vm.UserName.Set(name)

	unbind := vm.Accounts.Bind(func(list []domain.ProductResponse) {
		out.Println(vm.Greeting())
		for _, p := range list {
			printRow(out, accounts.NewRow(p))
		}
	})
	defer unbind()

	<-vm.FetchAccounts(ctx)
	if err := vm.Err.Get(); err != nil {
		return nil, err
	}
	out.Println(vm.TotalText())
	return vm.Accounts.Get(), nil
}

func printRow(out *printer, r accounts.Row) {
	if r.HasID {
		out.Printf("[%d] %s\n", r.ID, r.Name)
	} else {
		out.Printf("[-] %s\n", r.Name)
	}
	out.Printf("    %s\n    %s\n", r.PlanValue, r.Moneybox)
}
