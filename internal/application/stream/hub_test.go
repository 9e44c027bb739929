package stream

import (
	"testing"
	"time"
)

func TestHubDeliversSignal(t *testing.T) {
	h := NewHub()
	defer h.Close()

	ch, cancel := h.Subscribe()
	defer cancel()

	h.Notify()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("signal not delivered")
	}
}

func TestHubCoalescesBursts(t *testing.T) {
	h := NewHub()
	defer h.Close()

	ch, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < 100; i++ {
		h.Notify()
	}

	<-ch
	select {
	case <-ch:
		t.Fatal("burst should coalesce into a single pending signal")
	default:
	}
}

func TestHubNotifyDoesNotBlockOnSlowSubscriber(t *testing.T) {
	h := NewHub()
	defer h.Close()

	_, cancel := h.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			h.Notify()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked on a subscriber that never reads")
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	h := NewHub()
	defer h.Close()

	ch, cancel := h.Subscribe()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("channel should be closed after cancel")
	}

	// Cancelling twice and notifying after cancel must be safe.
	cancel()
	h.Notify()
}

func TestHubCloseClosesAllSubscribers(t *testing.T) {
	h := NewHub()

	ch1, _ := h.Subscribe()
	ch2, _ := h.Subscribe()
	h.Close()

	if _, ok := <-ch1; ok {
		t.Fatal("first channel should be closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatal("second channel should be closed")
	}

	// Subscribing after close yields an already-closed channel.
	ch3, cancel := h.Subscribe()
	defer cancel()
	if _, ok := <-ch3; ok {
		t.Fatal("post-close subscription should be closed immediately")
	}
}
