package accounts

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

// ErrNotAuthenticated is published when accounts are requested with no token.
var ErrNotAuthenticated = &domain.ValidationError{Message: "Not authenticated. Please log in."}

// ViewModel drives the accounts screen.
type ViewModel struct {
	provider domain.DataProvider
	tokens   domain.TokenStore
	guard    inflight.Guard

	Accounts       *observable.Value[[]domain.ProductResponse]
	TotalPlanValue *observable.Value[decimal.Decimal]
	Err            *observable.Value[error]
	Loading        *observable.Value[bool]

	// UserName is seeded by the presentation layer for the greeting.
	UserName *observable.Value[string]
}

// New returns a ViewModel that reads the bearer token from tokens.
func New(provider domain.DataProvider, tokens domain.TokenStore) *ViewModel {
	return &ViewModel{
		provider:       provider,
		tokens:         tokens,
		Accounts:       observable.New[[]domain.ProductResponse](nil),
		TotalPlanValue: observable.New(decimal.Zero),
		Err:            observable.New[error](nil),
		Loading:        observable.New(false),
		UserName:       observable.New(""),
	}
}

// FetchAccounts requests the product list. Without a token it publishes
// ErrNotAuthenticated and makes no request. On success the accounts and total
// are replaced; on failure they keep their previous values.
func (vm *ViewModel) FetchAccounts(ctx context.Context) <-chan struct{} {
	done, ok := vm.guard.Begin()
	if !ok {
		return done
	}

	token, ok := vm.tokens.Token()
	if !ok {
		log.Info(ctx, "attempted to fetch accounts without authentication token")
		vm.Err.Set(ErrNotAuthenticated)
		vm.guard.End()
		return done
	}

	vm.Loading.Set(true)
	go func() {
		defer vm.guard.End()
		resp, err := vm.provider.FetchProducts(ctx, token)
		vm.complete(ctx, resp, err)
	}()
	return done
}

func (vm *ViewModel) complete(ctx context.Context, resp domain.AccountResponse, err error) {
	vm.Loading.Set(false)

	if err != nil {
		log.Error(ctx, errors.Wrap(err, "fetch accounts failed"))
		vm.Err.Set(err)
		return
	}

	accounts := resp.ProductResponses
	if accounts == nil {
		accounts = []domain.ProductResponse{}
	}
	total := decimal.Zero
	if resp.TotalPlanValue != nil {
		total = *resp.TotalPlanValue
	}

	vm.Accounts.Set(accounts)
	vm.TotalPlanValue.Set(total)
	log.Info(ctx, "fetched accounts", j.MKV{"count": len(accounts)})
}

// Greeting is the salutation shown above the account list.
func (vm *ViewModel) Greeting() string {
	return "Hello, " + vm.UserName.Get() + "!"
}

// TotalText renders the aggregate plan value for display.
func (vm *ViewModel) TotalText() string {
	return "Total Plan Value: " + domain.FormatGBP(vm.TotalPlanValue.Get())
}
