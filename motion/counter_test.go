package motion

import (
	"testing"

	"github.com/automoto/motionfx/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseOutExpo(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutExpo(0))
	assert.Equal(t, 1.0, EaseOutExpo(1))
	assert.InDelta(t, 1-0.5, EaseOutExpo(0.1), 1e-6)
	assert.InDelta(t, 1-1.0/32, EaseOutExpo(0.5), 1e-6)
}

func TestCounterRunsToExactTarget(t *testing.T) {
	src := clock.NewStubSource(0)
	sched := clock.NewScheduler(src)
	c, err := NewCounter(100, 2200)
	require.NoError(t, err)

	require.True(t, c.Trigger(sched))

	prev := 0
	for i := 0; i < 200 && !c.State().Done; i++ {
		src.Advance(16.6)
		sched.Frame()
		got := c.Count()
		assert.GreaterOrEqual(t, got, prev)
		assert.LessOrEqual(t, got, 100)
		prev = got
	}

	require.True(t, c.State().Done)
	assert.Equal(t, 100, c.Count())
	assert.Equal(t, 0, sched.Len(), "completed counter stops scheduling")
}

func TestCounterStubClockScenario(t *testing.T) {
	src := clock.NewStubSource(0)
	sched := clock.NewScheduler(src)
	c, err := NewCounter(12, 1000)
	require.NoError(t, err)
	c.Trigger(sched)

	var samples []int
	for tick := 1; tick <= 10; tick++ {
		src.Advance(100)
		sched.Frame()
		samples = append(samples, c.Count())
	}

	for i := 1; i < len(samples); i++ {
		assert.GreaterOrEqual(t, samples[i], samples[i-1])
	}
	for _, s := range samples {
		assert.LessOrEqual(t, s, 12)
	}
	assert.Equal(t, 12, samples[9])
	assert.True(t, c.State().Done)
}

func TestCounterWaitsForTrigger(t *testing.T) {
	src := clock.NewStubSource(0)
	sched := clock.NewScheduler(src)
	c, err := NewCounter(50, 500)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		src.Advance(100)
		sched.Frame()
	}
	assert.Equal(t, 0, c.Count())
	assert.False(t, c.State().Started)

	c.Trigger(sched)
	src.Advance(500)
	sched.Frame()
	assert.Equal(t, 50, c.Count())
}

func TestCounterDoesNotRestart(t *testing.T) {
	src := clock.NewStubSource(0)
	sched := clock.NewScheduler(src)
	c, err := NewCounter(10, 100)
	require.NoError(t, err)

	c.Trigger(sched)
	src.Advance(100)
	sched.Frame()
	require.True(t, c.State().Done)

	assert.False(t, c.Trigger(sched))
	sched.Frame()
	assert.Equal(t, 10, c.Count())
	assert.Equal(t, 0, sched.Len())
}

func TestCounterEdgeCases(t *testing.T) {
	t.Run("negative target", func(t *testing.T) {
		_, err := NewCounter(-1, 100)
		assert.Error(t, err)
	})

	t.Run("zero duration completes on first frame", func(t *testing.T) {
		sched := clock.NewScheduler(clock.NewStubSource(0))
		c, err := NewCounter(7, 0)
		require.NoError(t, err)
		c.Trigger(sched)
		sched.Frame()
		assert.Equal(t, 7, c.Count())
	})

	t.Run("complete without animating", func(t *testing.T) {
		c, err := NewCounter(99, 2000)
		require.NoError(t, err)
		c.Complete()
		assert.Equal(t, 99, c.Count())
		assert.True(t, c.State().Done)
	})

	t.Run("stop is not resumable", func(t *testing.T) {
		src := clock.NewStubSource(0)
		sched := clock.NewScheduler(src)
		c, err := NewCounter(100, 1000)
		require.NoError(t, err)
		c.Trigger(sched)
		src.Advance(100)
		sched.Frame()
		c.Stop()
		mid := c.Count()

		src.Advance(2000)
		sched.Frame()
		assert.False(t, c.Trigger(sched))
		assert.Equal(t, mid, c.Count())
		assert.False(t, c.State().Done)
	})
}

func TestCounterLargeTargetNeverOvershoots(t *testing.T) {
	src := clock.NewStubSource(0)
	sched := clock.NewScheduler(src)
	c, err := NewCounter(100000, 1000)
	require.NoError(t, err)
	require.True(t, c.Trigger(sched))

	src.Advance(999)
	sched.Frame()
	assert.LessOrEqual(t, c.Count(), 100000)
	assert.False(t, c.State().Done)

	prev := c.Count()
	src.Advance(1)
	sched.Frame()
	assert.GreaterOrEqual(t, c.Count(), prev)
	assert.Equal(t, 100000, c.Count())
}

func TestCounterLargeTargetMonotoneEveryFrame(t *testing.T) {
	src := clock.NewStubSource(0)
	sched := clock.NewScheduler(src)
	c, err := NewCounter(1000000, 2000)
	require.NoError(t, err)
	require.True(t, c.Trigger(sched))

	prev := 0
	for i := 0; i < 400 && !c.State().Done; i++ {
		src.Advance(7)
		sched.Frame()
		got := c.Count()
		require.LessOrEqual(t, got, 1000000)
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.True(t, c.State().Done)
}
