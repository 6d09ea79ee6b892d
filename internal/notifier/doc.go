// Package notifier delivers availability messages.
//
// A Notifier sends one message. Deliver wraps a single attempt and turns its outcome
// into a Delivery value, logging failures instead of returning them, so a run always
// completes whether or not the message got through.
package notifier
