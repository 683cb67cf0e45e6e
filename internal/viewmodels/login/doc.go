// Package login validates credentials, signs the user in, and publishes the
// resulting state for the login screen.
package login
