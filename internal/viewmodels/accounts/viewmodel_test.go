package accounts_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"moneybox/internal/domain"
	"moneybox/internal/provider/providertest"
	"moneybox/internal/services/session"
	"moneybox/internal/viewmodels/accounts"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func signedIn() *session.Session {
	s := session.New()
	s.SetToken("token-123")
	return s
}

func TestFetchAccounts_NotAuthenticated(t *testing.T) {
	p := &providertest.Fake{AccountResponse: providertest.Accounts()}
	vm := accounts.New(p, session.New())

	done := vm.FetchAccounts(context.Background())
	select {
	case <-done:
	default:
		t.Fatal("missing token should fail synchronously")
	}

	require.Equal(t, accounts.ErrNotAuthenticated, vm.Err.Get())
	require.Equal(t, "Not authenticated. Please log in.", vm.Err.Get().Error())

	_, fetches, _ := p.Calls()
	require.Zero(t, fetches)
}

func TestFetchAccounts_Success(t *testing.T) {
	p := &providertest.Fake{AccountResponse: providertest.Accounts()}
	vm := accounts.New(p, signedIn())

	var loading []bool
	vm.Loading.Bind(func(b bool) { loading = append(loading, b) })

	<-vm.FetchAccounts(context.Background())

	require.Len(t, vm.Accounts.Get(), 2)
	require.True(t, decimal.RequireFromString("15707.08").Equal(vm.TotalPlanValue.Get()))
	require.Nil(t, vm.Err.Get())
	require.Equal(t, []bool{true, false}, loading)
	require.Equal(t, []string{"token-123"}, p.FetchTokens)
	require.Equal(t, "Total Plan Value: £15707.08", vm.TotalText())
}

func TestFetchAccounts_AbsentFieldsDefault(t *testing.T) {
	p := &providertest.Fake{}
	vm := accounts.New(p, signedIn())

	<-vm.FetchAccounts(context.Background())

	require.NotNil(t, vm.Accounts.Get())
	require.Empty(t, vm.Accounts.Get())
	require.True(t, vm.TotalPlanValue.Get().IsZero())
}

func TestFetchAccounts_SuccessLeavesErrorUntouched(t *testing.T) {
	p := &providertest.Fake{FetchErr: &domain.APIError{Message: "Failed to fetch accounts"}}
	vm := accounts.New(p, signedIn())

	<-vm.FetchAccounts(context.Background())
	require.EqualError(t, vm.Err.Get(), "Failed to fetch accounts")

	p.FetchErr = nil
	p.AccountResponse = providertest.Accounts()
	<-vm.FetchAccounts(context.Background())

	require.Len(t, vm.Accounts.Get(), 2)
	require.EqualError(t, vm.Err.Get(), "Failed to fetch accounts")
}

func TestFetchAccounts_FailureKeepsPreviousState(t *testing.T) {
	p := &providertest.Fake{AccountResponse: providertest.Accounts()}
	vm := accounts.New(p, signedIn())

	<-vm.FetchAccounts(context.Background())

	providerErr := &domain.APIError{Message: "Failed to fetch accounts"}
	p.FetchErr = providerErr
	<-vm.FetchAccounts(context.Background())

	require.Same(t, providerErr, vm.Err.Get())
	require.Len(t, vm.Accounts.Get(), 2)
	require.True(t, decimal.RequireFromString("15707.08").Equal(vm.TotalPlanValue.Get()))
}

func TestFetchAccounts_ReplacesWithoutMerge(t *testing.T) {
	p := &providertest.Fake{AccountResponse: providertest.Accounts()}
	vm := accounts.New(p, signedIn())
	<-vm.FetchAccounts(context.Background())

	p.AccountResponse = domain.AccountResponse{
		TotalPlanValue:   providertest.Dec("1"),
		ProductResponses: []domain.ProductResponse{providertest.ISA()},
	}
	<-vm.FetchAccounts(context.Background())

	require.Len(t, vm.Accounts.Get(), 1)
	require.Equal(t, "£1.00", domain.FormatGBP(vm.TotalPlanValue.Get()))
}

func TestFetchAccounts_SecondCallWhileInFlightIsIgnored(t *testing.T) {
	gate := make(chan struct{})
	p := &providertest.Fake{AccountResponse: providertest.Accounts(), Gate: gate}
	vm := accounts.New(p, signedIn())

	first := vm.FetchAccounts(context.Background())
	second := vm.FetchAccounts(context.Background())
	require.Equal(t, first, second)

	close(gate)
	<-first

	_, fetches, _ := p.Calls()
	require.Equal(t, 1, fetches)
}

func TestGreeting(t *testing.T) {
	vm := accounts.New(&providertest.Fake{}, session.New())
	vm.UserName.Set("Michael Jordan")
	require.Equal(t, "Hello, Michael Jordan!", vm.Greeting())
}

func TestNewRow(t *testing.T) {
	r := accounts.NewRow(providertest.ISA())
	require.Equal(t, accounts.Row{
		ID:        8043,
		HasID:     true,
		Name:      "Stocks & Shares ISA",
		PlanValue: "Plan Value: £10526.09",
		Moneybox:  "Moneybox: £570.00",
	}, r)

	r = accounts.NewRow(domain.ProductResponse{IsCashBox: true})
	require.False(t, r.HasID)
	require.Equal(t, "Unknown (Cash Box)", r.Name)
	require.Equal(t, "Plan Value: £0.00", r.PlanValue)
}
