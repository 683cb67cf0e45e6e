// Package devapi is an in-memory stand-in for the Moneybox API, used for local
// development and tests.
//
// HTTP API
//
//	POST /users/login
//	    Authenticate {Email, Password, Idfa}. Returns the user's names and a
//	    signed bearer token.
//
//	GET /investorproducts
//	    Return the caller's accounts and the total plan value. Requires
//	    Authorization: Bearer <token>.
//
//	POST /oneoffpayments
//	    Add {Amount} pence to the moneybox of {InvestorProductId}. Returns the
//	    new moneybox value in pounds. Requires a bearer token.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Every request must carry an AppId header.
//   - Non-2xx responses carry {"Name", "Message"}.
//   - Passwords are stored as bcrypt hashes; tokens are HS256 JWTs.
package devapi
