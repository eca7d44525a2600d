package notification

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// eventually polls cond; fake clock callbacks may run on their own goroutine.
func eventually(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func absent(n *Notifier) func() bool {
	return func() bool {
		_, ok := n.Message()
		return !ok
	}
}

func TestShow_ExpiresAfterDuration(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := New(clock, DisplayDuration)

	if _, ok := n.Message(); ok {
		t.Fatal("expected no message initially")
	}

	n.Show("wrong credentials")
	clock.Advance(DisplayDuration - time.Millisecond)

	msg, ok := n.Message()
	if !ok || msg != "wrong credentials" {
		t.Fatalf("expected 'wrong credentials', got '%s' (shown=%v)", msg, ok)
	}

	clock.Advance(time.Millisecond)
	eventually(t, absent(n))
}

func TestShow_NewerMessageSurvivesOlderDeadline(t *testing.T) {
	clock := clockwork.NewFakeClock()
	n := New(clock, DisplayDuration)

	n.Show("first")
	clock.Advance(3 * time.Second)
	n.Show("second")

	// the first message's deadline passes
	clock.Advance(2 * time.Second)
	time.Sleep(10 * time.Millisecond)

	msg, ok := n.Message()
	if !ok || msg != "second" {
		t.Fatalf("expected 'second' to still be shown, got '%s' (shown=%v)", msg, ok)
	}

	clock.Advance(3 * time.Second)
	eventually(t, absent(n))
}

func TestStaleExpireIgnored(t *testing.T) {
	n := New(clockwork.NewFakeClock(), DisplayDuration)

	n.Show("first")
	stale := n.version
	n.Show("second")

	n.expire(stale)

	if msg, ok := n.Message(); !ok || msg != "second" {
		t.Errorf("expected 'second', got '%s' (shown=%v)", msg, ok)
	}
}

func TestNew_DefaultDuration(t *testing.T) {
	n := New(clockwork.NewFakeClock(), 0)
	if n.ttl != DisplayDuration {
		t.Errorf("expected default %v, got %v", DisplayDuration, n.ttl)
	}
}
