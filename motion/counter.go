package motion

import (
	"fmt"
	"math"

	"github.com/automoto/motionfx/clock"
	"github.com/automoto/motionfx/platform"
)

// CounterState is a snapshot of an in-flight count-up.
type CounterState struct {
	Target   int
	Count    int
	Elapsed  float64
	Duration float64
	Started  bool
	Done     bool
}

// Counter counts from 0 to Target with an exponential ease-out once
// triggered. It runs at most once per mount.
type Counter struct {
	state  CounterState
	start  float64
	cancel func()
}

// NewCounter creates an idle counter. Negative targets are rejected.
func NewCounter(target int, durationMs float64) (*Counter, error) {
	if target < 0 {
		return nil, fmt.Errorf("counter target %d: must not be negative", target)
	}
	return &Counter{state: CounterState{Target: target, Duration: durationMs}}, nil
}

// EaseOutExpo is 1 - 2^(-10p), exactly 1 at p == 1.
func EaseOutExpo(p float64) float64 {
	if p >= 1 {
		return 1
	}
	if p <= 0 {
		return 0
	}
	return 1 - math.Exp2(-10*p)
}

// Trigger starts the count using sched.Now() as the start time. Calls after
// the first are ignored, so a second trigger never restarts it.
func (c *Counter) Trigger(sched *clock.Scheduler) bool {
	if c.state.Started || sched == nil {
		return false
	}
	c.state.Started = true
	c.start = sched.Now()
	c.cancel = sched.Start(c.step)
	platform.Logger().Debug("counter started", "target", c.state.Target, "duration_ms", c.state.Duration)
	return true
}

// Complete jumps straight to the target without animating. Used when
// motion is reduced.
func (c *Counter) Complete() {
	if c.state.Done {
		return
	}
	c.state.Started = true
	c.finish()
}

func (c *Counter) step(ts float64) {
	elapsed := ts - c.start
	if elapsed < 0 {
		elapsed = 0
	}
	c.state.Elapsed = elapsed

	p := 1.0
	if c.state.Duration > 0 {
		p = math.Min(elapsed/c.state.Duration, 1)
	}
	if p >= 1 {
		c.finish()
		return
	}
	count := int(math.Floor(EaseOutExpo(p) * float64(c.state.Target)))
	if count > c.state.Count {
		c.state.Count = count
	}
}

func (c *Counter) finish() {
	c.state.Count = c.state.Target
	c.state.Done = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Stop cancels a running count without completing it.
func (c *Counter) Stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// State returns a snapshot.
func (c *Counter) State() CounterState {
	return c.state
}

// Count returns the current value.
func (c *Counter) Count() int {
	return c.state.Count
}
