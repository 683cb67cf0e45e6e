// Package accounts loads the signed-in user's investor products and the
// aggregate plan value for the accounts screen.
package accounts
