package motion

import (
	"testing"

	"github.com/automoto/motionfx/clock"
	"github.com/stretchr/testify/assert"
)

func TestSmoothScrollReachesTarget(t *testing.T) {
	src := clock.NewStubSource(0)
	sched := clock.NewScheduler(src)
	var tops []float64
	s := NewSmoothScroll(sched, 600, func(top float64) { tops = append(tops, top) })

	s.To(0, 900)
	assert.True(t, s.Active())
	for i := 0; i < 40; i++ {
		src.Advance(16)
		sched.Frame()
	}
	assert.False(t, s.Active())
	assert.Equal(t, 900.0, tops[len(tops)-1])
	for i := 1; i < len(tops); i++ {
		assert.GreaterOrEqual(t, tops[i], tops[i-1])
	}
	sched.Frame()
	assert.Zero(t, sched.Len())
}

func TestSmoothScrollReplacesInFlight(t *testing.T) {
	src := clock.NewStubSource(0)
	sched := clock.NewScheduler(src)
	var top float64
	s := NewSmoothScroll(sched, 300, func(v float64) { top = v })

	s.To(0, 1000)
	src.Advance(100)
	sched.Frame()
	s.To(top, 0)
	sched.Frame()
	assert.Equal(t, 1, sched.Len())

	for i := 0; i < 30; i++ {
		src.Advance(16)
		sched.Frame()
	}
	assert.Zero(t, top)
}

func TestSmoothScrollNoop(t *testing.T) {
	sched := clock.NewScheduler(clock.NewStubSource(0))
	called := false
	s := NewSmoothScroll(sched, 300, func(float64) { called = true })
	s.To(50, 50)
	assert.False(t, s.Active())
	assert.False(t, called)
}
