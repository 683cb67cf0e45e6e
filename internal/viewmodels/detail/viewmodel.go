package detail

import (
	"context"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"github.com/luno/jettison/log"
	"github.com/shopspring/decimal"

	"moneybox/internal/domain"
	"moneybox/internal/observable"
	"moneybox/internal/viewmodels/inflight"
)

// AlertKind tags an Alert as a success or an error.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
)

// Alert is a user-facing message raised by the detail screen.
type Alert struct {
	Kind            AlertKind
	Title           string
	Message         string
	ShowWebsiteLink bool
}

const (
	msgUpdateFailed = "Failed to update Moneybox value"
	msgMissingID    = "Account identifier is missing"
)

// ViewModel drives the detail screen for a single account.
type ViewModel struct {
	account  domain.ProductResponse
	provider domain.DataProvider
	tokens   domain.TokenStore
	guard    inflight.Guard

	MoneyboxValue *observable.Value[decimal.Decimal]
	Alerts        *observable.Value[Alert]
}

// New returns a ViewModel for account. The current moneybox value starts at
// the account's moneybox balance.
func New(account domain.ProductResponse, provider domain.DataProvider, tokens domain.TokenStore) *ViewModel {
	return &ViewModel{
		account:       account,
		provider:      provider,
		tokens:        tokens,
		MoneyboxValue: observable.New(account.MoneyboxOrZero()),
		Alerts:        observable.New(Alert{}),
	}
}

// Account returns the snapshot the view-model was built from.
func (vm *ViewModel) Account() domain.ProductResponse { return vm.account }

// AccountName is the display name of the account.
func (vm *ViewModel) AccountName() string { return vm.account.DisplayName() }

// PlanValue is the formatted plan value.
func (vm *ViewModel) PlanValue() string { return domain.FormatGBP(vm.account.PlanValueOrZero()) }

// MoneyboxText is the formatted current moneybox value.
func (vm *ViewModel) MoneyboxText() string { return domain.FormatGBP(vm.MoneyboxValue.Get()) }

// AddMoney tops up the moneybox by £10. The balance only changes once the API
// confirms it. An account without an identifier raises an error alert and no
// request is made.
func (vm *ViewModel) AddMoney(ctx context.Context) <-chan struct{} {
	done, ok := vm.guard.Begin()
	if !ok {
		return done
	}

	if vm.account.ID == nil {
		log.Info(ctx, "add money attempted on account without identifier")
		vm.Alerts.Set(errorAlert(msgMissingID))
		vm.guard.End()
		return done
	}

	token, _ := vm.tokens.Token()
	req := domain.OneOffPaymentRequest{Amount: domain.TopUpPence, InvestorProductID: *vm.account.ID}

	go func() {
		defer vm.guard.End()
		resp, err := vm.provider.AddMoney(ctx, token, req)
		vm.complete(ctx, req, resp, err)
	}()
	return done
}

func (vm *ViewModel) complete(
	ctx context.Context,
	req domain.OneOffPaymentRequest,
	resp domain.OneOffPaymentResponse,
	err error,
) {
	if err != nil {
		log.Error(ctx, errors.Wrap(err, "add money failed", j.MKV{"account_id": req.InvestorProductID}))
		vm.Alerts.Set(errorAlert(err.Error()))
		return
	}
	if resp.Moneybox == nil {
		log.Info(ctx, "add money response missing moneybox", j.MKV{"account_id": req.InvestorProductID})
		vm.Alerts.Set(errorAlert(msgUpdateFailed))
		return
	}

	vm.MoneyboxValue.Set(*resp.Moneybox)
	vm.Alerts.Set(Alert{
		Kind:  AlertSuccess,
		Title: "Success",
		Message: "Successfully added £" + domain.PenceToPounds(req.Amount).String() +
			" to your Moneybox. New value: " + domain.FormatGBP(*resp.Moneybox),
	})
}

func errorAlert(msg string) Alert {
	return Alert{Kind: AlertError, Title: "Error", Message: msg, ShowWebsiteLink: true}
}
