package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print the greeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newPrinter(cmd.OutOrStdout())
			name, err := signIn(cmd.Context(), out)
			if err != nil {
				return err
			}
			out.Println("Hello, " + name + "!")
			return nil
		},
	}
	return cmd
}

// signIn runs the login view-model with the configured credentials and
// returns the signed-in user's display name.
func signIn(ctx context.Context, out *printer) (string, error) {
	vm := appCtx.NewLogin()
	unbind := vm.Loading.Bind(func(loading bool) {
		if loading {
			out.Println("Signing in...")
		}
	})
	defer unbind()

	<-vm.Login(ctx, email, password)
	if !vm.LoggedIn.Get() {
		return "", vm.Err.Get()
	}
	return vm.UserName.Get(), nil
}
