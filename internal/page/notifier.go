// Package page holds the employee and attendance page controllers and the
// transient notification they report outcomes through.
package page

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	ID      string
	Kind    Kind
	Message string
}

// Notifier holds at most one notification. Each one owns its expiry timer,
// so an older timer can never clear a newer notification.
type Notifier struct {
	mu       sync.Mutex
	ttl      time.Duration
	current  *Notification
	timer    *time.Timer
	listener func(Notification)
}

// NewNotifier returns a notifier whose notifications expire after ttl. A ttl
// of zero keeps them until dismissed.
func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl}
}

// OnShow registers fn to be called with every notification shown.
func (n *Notifier) OnShow(fn func(Notification)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listener = fn
}

func (n *Notifier) Show(kind Kind, message string) Notification {
	note := Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
	}

	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = &note
	if n.ttl > 0 {
		n.timer = time.AfterFunc(n.ttl, func() { n.expire(note.ID) })
	}
	listener := n.listener
	n.mu.Unlock()

	if listener != nil {
		listener(note)
	}
	return note
}

func (n *Notifier) expire(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != nil && n.current.ID == id {
		n.current = nil
		n.timer = nil
	}
}

func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}

func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}
