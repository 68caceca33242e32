package notify

import (
	"sync"
)

// InMemNotifier records notifications. It is used in tests and as the
// fallback when no redis address is configured.
type InMemNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

func (n *InMemNotifier) Notify(notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.notifications = append(n.notifications, notification)
}

// Notifications returns a copy of everything notified so far.
func (n *InMemNotifier) Notifications() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]Notification(nil), n.notifications...)
}
