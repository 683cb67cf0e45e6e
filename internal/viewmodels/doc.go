// Package viewmodels groups the view-model state machines that drive the
// presentation layer.
//
// Each view-model publishes its state through observable.Value fields and
// exposes imperative entry points. Entry points return immediately with a
// channel that is closed once the outcome has been published. While an
// operation is in flight, calling it again starts nothing new and returns the
// in-flight operation's channel.
package viewmodels
