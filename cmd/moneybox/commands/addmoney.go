package commands

import (
	"context"
	"strconv"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"moneybox/internal/domain"
	"moneybox/internal/viewmodels/detail"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrTopUpFailed     = errors.New("top-up failed")
)

func addMoneyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-money ACCOUNT_ID",
		Short: "Add £10 to an account's moneybox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "account id must be a number", j.MKV{"arg": args[0]})
			}

			out := newPrinter(cmd.OutOrStdout())
			name, err := signIn(cmd.Context(), out)
			if err != nil {
				return err
			}
			list, err := listAccounts(cmd.Context(), out, name)
			if err != nil {
				return err
			}
			return addMoney(cmd.Context(), out, list, id)
		},
	}
	return cmd
}

// addMoney opens the detail view-model for the account with id and tops it
// up. An error alert is returned as an error so the exit status reflects it.
func addMoney(ctx context.Context, out *printer, list []domain.ProductResponse, id int64) error {
	account, ok := findAccount(list, id)
	if !ok {
		return errors.Wrap(ErrAccountNotFound, "", j.MKV{"account_id": id})
	}

	vm := appCtx.NewDetail(account)
	out.Println(vm.AccountName())
	out.Println("Plan Value: " + vm.PlanValue())

	var last detail.Alert
	unbindValue := vm.MoneyboxValue.Bind(func(decimal.Decimal) {
		out.Println("Moneybox: " + vm.MoneyboxText())
	})
	defer unbindValue()
	unbindAlert := vm.Alerts.Bind(func(a detail.Alert) {
		last = a
		out.Printf("%s: %s\n", a.Title, a.Message)
		if a.ShowWebsiteLink {
			out.Println("For help visit https://www.moneyboxapp.com")
		}
	})
	defer unbindAlert()

	<-vm.AddMoney(ctx)
	if last.Kind == detail.AlertError {
		return errors.Wrap(ErrTopUpFailed, "", j.MKV{"account_id": id})
	}
	return nil
}

func findAccount(list []domain.ProductResponse, id int64) (domain.ProductResponse, bool) {
	for _, p := range list {
		if p.ID != nil && *p.ID == id {
			return p, true
		}
	}
	return domain.ProductResponse{}, false
}
