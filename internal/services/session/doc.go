// Package session tracks the signed-in user's bearer token.
//
// A Session is created by the application controller and passed to every
// view-model that needs authentication, so there is no process-wide token.
// The token lives only in memory.
package session
