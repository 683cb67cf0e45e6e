// Package observable provides a small reactive property used to bind view
// state to presentation code.
//
// A Value holds the latest assignment and notifies every bound subscriber,
// synchronously and in bind order, each time it is set. Subscribers never see
// values assigned before they bound, and equal consecutive values are not
// collapsed. Callbacks run on the goroutine that called Set; presentation code
// must move work onto its own render goroutine if it needs one.
package observable
