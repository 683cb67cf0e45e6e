// Package provider implements domain.DataProvider over the Moneybox HTTP API.
//
// Supported operations:
//   - Logging in with email and password to obtain a bearer token.
//   - Fetching the investor products (accounts) and total plan value.
//   - Making a one-off payment into an account's moneybox.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Every request carries the AppId, appVersion and apiVersion
// headers; authenticated calls add an Authorization bearer header. Non-2xx
// responses are decoded into *domain.APIError carrying the server's message.
package provider
