package game

import "sync"

// Feed delivers session snapshots to a single reader, typically the
// renderer. Only the latest snapshot matters, so it keeps at most one
// pending value and replaces it when the reader falls behind.
type Feed struct {
	mu       sync.Mutex
	updates  chan Session
	done     chan struct{}
	doneOnce sync.Once
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{
		updates: make(chan Session, 1),
		done:    make(chan struct{}),
	}
}

// Publish offers s to the reader without blocking. A snapshot the reader
// has not picked up yet is dropped in favour of s.
func (f *Feed) Publish(s Session) {
	select {
	case <-f.done:
		return
	default:
	}

	// Publishers are serialized so drop-then-send cannot interleave.
	f.mu.Lock()
	defer f.mu.Unlock()

	select {
	case f.updates <- s:
		return
	default:
	}
	select {
	case <-f.updates:
	default:
	}
	select {
	case f.updates <- s:
	default:
	}
}

// Updates returns the channel snapshots arrive on.
func (f *Feed) Updates() <-chan Session {
	return f.updates
}

// Done returns a channel closed when the feed is closed.
func (f *Feed) Done() <-chan struct{} {
	return f.done
}

// Close stops delivery. Safe to call multiple times.
func (f *Feed) Close() {
	f.doneOnce.Do(func() {
		close(f.done)
	})
}
