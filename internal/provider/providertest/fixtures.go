package providertest

import (
	"github.com/shopspring/decimal"

	"moneybox/internal/domain"
)

// Dec parses s into a decimal pointer, for optional wire fields.
func Dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ISA is a stocks and shares account with £570.00 in its moneybox.
func ISA() domain.ProductResponse {
	return domain.ProductResponse{
		ID:        Int64(8043),
		PlanValue: Dec("10526.09"),
		Moneybox:  Dec("570.00"),
		Product:   &domain.Product{FriendlyName: Str("Stocks & Shares ISA")},
	}
}

// GIA is a general investment account with an empty moneybox.
func GIA() domain.ProductResponse {
	return domain.ProductResponse{
		ID:        Int64(8045),
		PlanValue: Dec("5180.99"),
		Moneybox:  Dec("0"),
		Product:   &domain.Product{FriendlyName: Str("General Investment Account")},
	}
}

// Accounts is the two-account response with a total plan value of £15707.08.
func Accounts() domain.AccountResponse {
	return domain.AccountResponse{
		TotalPlanValue:   Dec("15707.08"),
		ProductResponses: []domain.ProductResponse{ISA(), GIA()},
	}
}

// LoginOK signs in Michael Jordan with a fixed bearer token.
func LoginOK() domain.LoginResponse {
	return domain.LoginResponse{
		User:    domain.User{FirstName: Str("Michael"), LastName: Str("Jordan")},
		Session: domain.SessionInfo{BearerToken: "token-123"},
	}
}
