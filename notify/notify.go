// Package notify signals the outcome of mutating operations to the
// presentation layer. The contract is one notification per successful
// operation, carrying the operation's result.
package notify

// Notification is the payload signalled after a successful mutating
// operation.
type Notification struct {
	Event   string      `json:"event"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Payload interface{} `json:"payload,omitempty"`
}

// Notifier delivers notifications. Delivery is best effort: a notification
// never makes the operation that emitted it fail.
type Notifier interface {
	Notify(Notification)
}
