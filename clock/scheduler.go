// Package clock wraps the host's per-frame callback into a cooperative
// loop that animation components subscribe to.
package clock

// TickFunc receives the frame timestamp in milliseconds.
type TickFunc func(ts float64)

type subscription struct {
	tick TickFunc
	live bool
}

// Scheduler fans one host frame out to every live subscriber.
// It is not safe for concurrent use; everything runs on the update goroutine.
type Scheduler struct {
	source  FrameSource
	subs    []*subscription
	now     float64
	frames  uint64
	stopped bool
}

// NewScheduler creates a scheduler reading timestamps from source.
func NewScheduler(source FrameSource) *Scheduler {
	if source == nil {
		source = NewRealSource()
	}
	return &Scheduler{source: source, now: source.Now()}
}

// Start subscribes tick to every subsequent frame. The returned cancel is
// idempotent; once it returns, tick is never invoked again, even if the
// current frame has not finished dispatching.
func (s *Scheduler) Start(tick TickFunc) (cancel func()) {
	if s.stopped || tick == nil {
		return func() {}
	}
	sub := &subscription{tick: tick, live: true}
	s.subs = append(s.subs, sub)
	return func() {
		if !sub.live {
			return
		}
		sub.live = false
		sub.tick = nil
	}
}

// Frame reads the frame source and ticks all live subscribers in
// subscription order. Subscribers added during a frame start on the next one.
func (s *Scheduler) Frame() {
	if s.stopped {
		return
	}
	s.now = s.source.Now()
	s.frames++

	n := len(s.subs)
	for i := 0; i < n; i++ {
		if s.stopped {
			return
		}
		sub := s.subs[i]
		if sub.live {
			sub.tick(s.now)
		}
	}
	s.compact()
}

func (s *Scheduler) compact() {
	kept := s.subs[:0]
	for _, sub := range s.subs {
		if sub.live {
			kept = append(kept, sub)
		}
	}
	for i := len(kept); i < len(s.subs); i++ {
		s.subs[i] = nil
	}
	s.subs = kept
}

// Now returns the timestamp of the last frame (or of creation).
func (s *Scheduler) Now() float64 {
	return s.now
}

// Frames returns how many frames have been dispatched.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Len returns the number of live subscribers.
func (s *Scheduler) Len() int {
	n := 0
	for _, sub := range s.subs {
		if sub.live {
			n++
		}
	}
	return n
}

// Stop cancels every subscriber and refuses new ones. Safe to call twice.
func (s *Scheduler) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	for _, sub := range s.subs {
		sub.live = false
		sub.tick = nil
	}
	s.subs = nil
}

// Stopped reports whether Stop has been called.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}
