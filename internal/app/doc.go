// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, builds the HTTP data provider and the
// in-memory session, and exposes them through App, which hands out view-models
// that all share the same session.
package app
