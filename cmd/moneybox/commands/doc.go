// Package commands defines the moneybox CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login       Sign in and print the greeting
//   - accounts    Sign in and list accounts with their plan and moneybox values
//   - add-money   Sign in and add £10 to an account's moneybox
//   - shell       Sign in once and run accounts/add/logout interactively
//
// # Implementation
//
// The root command loads configuration and builds the app context before any
// subcommand runs. The session token is only ever held in memory, so every
// one-shot command signs in first; shell keeps one session for its lifetime.
// Subcommands bind to view-model observables and print through a single
// printer, so output from request goroutines never interleaves.
package commands
