// Package providertest offers an in-memory domain.DataProvider for tests.
package providertest

import (
	"context"
	"sync"

	"moneybox/internal/domain"
)

// Fake is a scripted domain.DataProvider. Each operation returns the
// configured response, or the configured error when set. If Gate is non-nil
// every call blocks until Gate is closed or ctx is done.
type Fake struct {
	mu sync.Mutex

	LoginResponse   domain.LoginResponse
	LoginErr        error
	AccountResponse domain.AccountResponse
	FetchErr        error
	PaymentResponse domain.OneOffPaymentResponse
	AddMoneyErr     error

	Gate chan struct{}

	LoginCalls    []domain.LoginRequest
	FetchTokens   []string
	AddMoneyCalls []domain.OneOffPaymentRequest
}

var _ domain.DataProvider = (*Fake)(nil)

func (f *Fake) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	f.mu.Lock()
	f.LoginCalls = append(f.LoginCalls, req)
	resp, err := f.LoginResponse, f.LoginErr
	f.mu.Unlock()

	if err := f.wait(ctx); err != nil {
		return domain.LoginResponse{}, err
	}
	return resp, err
}

func (f *Fake) FetchProducts(ctx context.Context, token string) (domain.AccountResponse, error) {
	f.mu.Lock()
	f.FetchTokens = append(f.FetchTokens, token)
	resp, err := f.AccountResponse, f.FetchErr
	f.mu.Unlock()

	if err := f.wait(ctx); err != nil {
		return domain.AccountResponse{}, err
	}
	return resp, err
}

func (f *Fake) AddMoney(
	ctx context.Context,
	token string,
	req domain.OneOffPaymentRequest,
) (domain.OneOffPaymentResponse, error) {
	f.mu.Lock()
	f.AddMoneyCalls = append(f.AddMoneyCalls, req)
	resp, err := f.PaymentResponse, f.AddMoneyErr
	f.mu.Unlock()

	if err := f.wait(ctx); err != nil {
		return domain.OneOffPaymentResponse{}, err
	}
	return resp, err
}

// Calls returns how many times each operation was invoked.
func (f *Fake) Calls() (login, fetch, addMoney int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.LoginCalls), len(f.FetchTokens), len(f.AddMoneyCalls)
}

func (f *Fake) wait(ctx context.Context) error {
	if f.Gate == nil {
		return nil
	}
	select {
	case <-f.Gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Str returns a pointer to s, for optional wire fields.
func Str(s string) *string { return &s }

// Int64 returns a pointer to n, for optional wire fields.
func Int64(n int64) *int64 { return &n }
