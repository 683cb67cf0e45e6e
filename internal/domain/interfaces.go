package domain

import "context"

// DataProvider is how we talk to the Moneybox API, all with context.
//
// Implementations own transport concerns such as timeouts; callers only see
// a typed response or an error whose message is fit for display.
type DataProvider interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	FetchProducts(ctx context.Context, token string) (AccountResponse, error)
	AddMoney(ctx context.Context, token string, req OneOffPaymentRequest) (OneOffPaymentResponse, error)
}

// TokenStore holds the bearer token of the signed-in user.
type TokenStore interface {
	SetToken(token string)
	Token() (string, bool)
	Clear()
}
