// Package main runs the in-memory development Moneybox API used by the CLI
// during development and tests.
//
// HTTP API
//
//	POST /users/login { "Email", "Password", "Idfa" }
//	    Check the credentials and return the user plus a bearer token.
//
//	GET /investorproducts
//	    Return the caller's accounts and their total plan value.
//
//	POST /oneoffpayments { "Amount", "InvestorProductId" }
//	    Add Amount pence to the account's moneybox and return the new balance.
//
// Behaviour
//
//   - Every request must carry an AppId header.
//   - The last two routes need an Authorization: Bearer token from login.
//   - Non-2xx responses carry { "Name", "Message" }.
//   - All state is held in memory and lost on process exit. One demo user is
//     seeded from MONEYBOX_DEV_* variables.
//   - The default listen address is :8080.
package main
