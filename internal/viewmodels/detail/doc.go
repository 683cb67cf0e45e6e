// Package detail shows one account and tops up its moneybox.
//
// Outcomes of AddMoney are delivered as Alert events through the Alerts
// observable; balance changes arrive through MoneyboxValue.
package detail
