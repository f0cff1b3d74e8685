package motion

import (
	"github.com/automoto/motionfx/clock"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SmoothScroll eases the viewport to a target offset. Starting a new
// scroll replaces the one in flight.
type SmoothScroll struct {
	sched    *clock.Scheduler
	apply    func(top float64)
	duration float64
	tween    *gween.Tween
	last     float64
	cancel   func()
}

// NewSmoothScroll drives apply with the eased offset on every frame.
func NewSmoothScroll(sched *clock.Scheduler, durationMs float64, apply func(top float64)) *SmoothScroll {
	if durationMs <= 0 {
		durationMs = 1
	}
	return &SmoothScroll{sched: sched, apply: apply, duration: durationMs}
}

// To starts easing from the current offset to target.
func (s *SmoothScroll) To(from, target float64) {
	s.Stop()
	if s.sched == nil || s.apply == nil {
		return
	}
	if from == target {
		return
	}
	s.tween = gween.New(float32(from), float32(target), float32(s.duration), ease.InOutQuad)
	s.last = s.sched.Now()
	s.cancel = s.sched.Start(func(ts float64) {
		v, done := s.tween.Update(float32(ts - s.last))
		s.last = ts
		if done {
			s.apply(target)
			s.Stop()
			return
		}
		s.apply(float64(v))
	})
}

// Active reports whether a scroll is in flight.
func (s *SmoothScroll) Active() bool {
	return s.cancel != nil
}

// Stop abandons the scroll where it is.
func (s *SmoothScroll) Stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
