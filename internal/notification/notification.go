// Package notification holds the single transient status message shown to
// the user.
package notification

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DisplayDuration is how long a message stays visible.
const DisplayDuration = 5 * time.Second

// Notifier holds at most one message. Showing a message cancels the clear
// scheduled by the previous one, so a message is always visible for the
// full duration.
type Notifier struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	ttl     time.Duration
	message string
	shown   bool
	version uint64
	timer   clockwork.Timer
}

func New(clock clockwork.Clock, ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DisplayDuration
	}

	return &Notifier{clock: clock, ttl: ttl}
}

// Show replaces the current message and schedules its removal.
func (n *Notifier) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()
	n.version++
	n.message = message
	n.shown = true

	v := n.version
	n.timer = n.clock.AfterFunc(n.ttl, func() { n.expire(v) })
}

// Message returns the visible message, if any.
func (n *Notifier) Message() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.message, n.shown
}

func (n *Notifier) expire(version uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// stale: a newer message took over after this timer fired
	if version != n.version {
		return
	}
	n.message, n.shown = "", false
	n.timer = nil
}

func (n *Notifier) stopLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
