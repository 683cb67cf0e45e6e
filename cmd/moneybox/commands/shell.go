package commands

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"moneybox/internal/domain"
)

func shellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Sign in once and manage accounts interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newPrinter(cmd.OutOrStdout())
			name, err := signIn(cmd.Context(), out)
			if err != nil {
				return err
			}
			out.Println("Hello, " + name + "!")
			runShell(cmd.Context(), bufio.NewScanner(cmd.InOrStdin()), out, name)
			return nil
		},
	}
	return cmd
}

const shellHelp = "commands: accounts | add <id> | login | logout | quit"

// runShell reads one command per line until quit or end of input. Command
// errors are printed and the loop carries on.
func runShell(ctx context.Context, in *bufio.Scanner, out *printer, name string) {
	var list []domain.ProductResponse

	out.Println(shellHelp)
	for {
		out.Printf("> ")
		if !in.Scan() {
			out.Println()
			return
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "accounts":
			list, err = listAccounts(ctx, out, name)
		case "add":
			if len(fields) != 2 {
				out.Println("usage: add <id>")
				continue
			}
			id, perr := strconv.ParseInt(fields[1], 10, 64)
			if perr != nil {
				out.Println("usage: add <id>")
				continue
			}
			if list == nil {
				list, err = listAccounts(ctx, out, name)
				if err != nil {
					break
				}
			}
			if err = addMoney(ctx, out, list, id); err == nil {
				// Plan values moved; refetch before the next add.
				list = nil
			}
		case "login":
			name, err = signIn(ctx, out)
			if err == nil {
				out.Println("Hello, " + name + "!")
			}
		case "logout":
			appCtx.Logout()
			list = nil
			out.Println("Logged out")
		case "quit", "exit":
			return
		default:
			out.Println(shellHelp)
		}
		if err != nil {
			out.Println("Error:", err)
		}
	}
}
