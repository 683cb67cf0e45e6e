package accounts

import "moneybox/internal/domain"

// Row is the display form of one account in the list.
type Row struct {
	ID        int64
	HasID     bool
	Name      string
	PlanValue string
	Moneybox  string
}

// NewRow formats an account for the list.
func NewRow(p domain.ProductResponse) Row {
	r := Row{
		Name:      p.DisplayName(),
		PlanValue: "Plan Value: " + domain.FormatGBP(p.PlanValueOrZero()),
		Moneybox:  "Moneybox: " + domain.FormatGBP(p.MoneyboxOrZero()),
	}
	if p.ID != nil {
		r.ID, r.HasID = *p.ID, true
	}
	return r
}
