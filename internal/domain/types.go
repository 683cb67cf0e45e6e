package domain

import "github.com/shopspring/decimal"

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
	Idfa     string `json:"Idfa,omitempty"` // device identifier
}

// LoginResponse carries the bearer token and the profile of the signed-in user.
type LoginResponse struct {
	User    User        `json:"User"`
	Session SessionInfo `json:"Session"`
}

// User is the subset of the investor profile the client displays.
type User struct {
	FirstName *string `json:"FirstName,omitempty"`
	LastName  *string `json:"LastName,omitempty"`
}

// SessionInfo holds the bearer token issued on login.
type SessionInfo struct {
	BearerToken string `json:"BearerToken"`
}

// Product describes the kind of investment an account holds.
type Product struct {
	FriendlyName *string `json:"FriendlyName,omitempty"`
}

// ProductResponse is a single investor product (an account) as returned by the API.
type ProductResponse struct {
	ID        *int64           `json:"Id,omitempty"`
	PlanValue *decimal.Decimal `json:"PlanValue,omitempty"`
	Moneybox  *decimal.Decimal `json:"Moneybox,omitempty"`
	IsCashBox bool             `json:"IsCashBox"`
	Product   *Product         `json:"Product,omitempty"`
}

// PlanValueOrZero returns the plan value, treating an absent value as zero.
func (p ProductResponse) PlanValueOrZero() decimal.Decimal {
	if p.PlanValue == nil {
		return decimal.Zero
	}
	return *p.PlanValue
}

// MoneyboxOrZero returns the moneybox balance, treating an absent value as zero.
func (p ProductResponse) MoneyboxOrZero() decimal.Decimal {
	if p.Moneybox == nil {
		return decimal.Zero
	}
	return *p.Moneybox
}

// AccountResponse is the body of GET /investorproducts.
//
// TotalPlanValue is sourced independently by the API and need not equal the
// sum of the individual plan values.
type AccountResponse struct {
	TotalPlanValue   *decimal.Decimal  `json:"TotalPlanValue,omitempty"`
	ProductResponses []ProductResponse `json:"ProductResponses,omitempty"`
}

// OneOffPaymentRequest is the body of POST /oneoffpayments. Amount is in
// minor units (pence).
type OneOffPaymentRequest struct {
	Amount            int64 `json:"Amount"`
	InvestorProductID int64 `json:"InvestorProductId"`
}

// OneOffPaymentResponse carries the moneybox balance after a top-up, in major units.
type OneOffPaymentResponse struct {
	Moneybox *decimal.Decimal `json:"Moneybox,omitempty"`
}

// ErrorResponse is the JSON body of a non-2xx API response.
type ErrorResponse struct {
	Name    string `json:"Name"`
	Message string `json:"Message"`
}

// DisplayName is the account's friendly name, "Unknown" when absent, marked
// when the account is a cash box.
func (p ProductResponse) DisplayName() string {
	name := "Unknown"
	if p.Product != nil && p.Product.FriendlyName != nil {
		name = *p.Product.FriendlyName
	}
	if p.IsCashBox {
		return name + " (Cash Box)"
	}
	return name
}
