package field

import (
	"testing"

	"github.com/automoto/motionfx/clock"
	"github.com/automoto/motionfx/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAurora(t *testing.T) *Aurora {
	t.Helper()
	a, err := NewAurora(AuroraConfig{
		Stops:         []string{"#00dc82", "#36e4da", "#0047e1"},
		StopAlpha:     0x40 / 255.0,
		Amplitude:     1,
		WaveScale:     50,
		Frequency:     0.01,
		Baseline:      0.5,
		SampleSpacing: 10,
		Step:          0.01,
	})
	require.NoError(t, err)
	return a
}

func testParticles(t *testing.T) *Particles {
	t.Helper()
	p, err := NewParticles(ParticleConfig{
		Count:            30,
		MinSize:          2,
		MaxSize:          6,
		MinPeriod:        15,
		MaxPeriod:        35,
		DelayPerParticle: 0.5,
		Rise:             20,
		Step:             1.0 / 60,
		Palette:          []string{"#00dc82", "#36e4da", "#0047e1"},
		Alpha:            0.5,
		Seed:             7,
	})
	require.NoError(t, err)
	return p
}

func TestSurfaceDevicePixels(t *testing.T) {
	s, err := NewSurface(101, 50, 1.5)
	require.NoError(t, err)
	defer s.Close()

	w, h := s.PixelSize()
	assert.Equal(t, 152, w)
	assert.Equal(t, 75, h)

	require.NoError(t, s.Resize(200, 100))
	w, h = s.PixelSize()
	assert.Equal(t, 300, w)
	assert.Equal(t, 150, h)

	assert.ErrorIs(t, s.Resize(0, 100), ErrNoSurface)
	lw, lh := s.Size()
	assert.Equal(t, 200.0, lw, "failed resize keeps the old size")
	assert.Equal(t, 100.0, lh)
}

func TestNewSurfaceRejectsEmpty(t *testing.T) {
	_, err := NewSurface(0, 0, 1)
	assert.ErrorIs(t, err, ErrNoSurface)
}

func TestAuroraBadStop(t *testing.T) {
	_, err := NewAurora(AuroraConfig{Stops: []string{"#00dc82", "teal"}})
	assert.Error(t, err)

	_, err = NewAurora(AuroraConfig{})
	assert.Error(t, err)
}

func TestAuroraTimeAfterTicks(t *testing.T) {
	src := clock.NewStubSource(0)
	sched := clock.NewScheduler(src)
	surface, err := NewSurface(64, 64, 1)
	require.NoError(t, err)
	defer surface.Close()

	a := testAurora(t)
	r, cancel := MountField(sched, platform.NewEvents(), surface, a)
	require.Equal(t, Running, r.State())

	const n = 120
	for i := 0; i < n; i++ {
		src.Advance(16.7)
		sched.Frame()
	}
	assert.InDelta(t, n*0.01, a.Frame().Time, 1e-9)
	assert.Equal(t, uint64(n), a.Ticks())
	assert.Equal(t, uint64(n), r.Ticks())

	cancel()
	sched.Frame()
	assert.Equal(t, uint64(n), a.Ticks(), "no ticks after cancel")
	assert.Equal(t, Stopped, r.State())
}

func TestAuroraTimeIgnoresFrameGaps(t *testing.T) {
	src := clock.NewStubSource(0)
	sched := clock.NewScheduler(src)
	surface, err := NewSurface(32, 32, 1)
	require.NoError(t, err)
	defer surface.Close()

	a := testAurora(t)
	_, cancel := MountField(sched, nil, surface, a)
	defer cancel()

	src.Advance(16)
	sched.Frame()
	src.Advance(500)
	sched.Frame()
	assert.InDelta(t, 0.02, a.Frame().Time, 1e-12)
}

func TestAuroraPaintsBelowWave(t *testing.T) {
	surface, err := NewSurface(100, 100, 1)
	require.NoError(t, err)
	defer surface.Close()

	a := testAurora(t)
	surface.Begin()
	require.NoError(t, a.Paint(surface))

	img := surface.Image()
	_, _, _, above := img.At(50, 5).RGBA()
	_, _, _, below := img.At(50, 95).RGBA()
	assert.Zero(t, above, "sky stays transparent")
	assert.NotZero(t, below, "area under the wave is filled")
}

func TestWaveY(t *testing.T) {
	a := testAurora(t)
	assert.InDelta(t, 50.0, a.WaveY(0, 100), 1e-9)
	a.Advance()
	assert.Greater(t, a.WaveY(0, 100), 50.0)
}

func TestResizeListenerReleased(t *testing.T) {
	sched := clock.NewScheduler(clock.NewStubSource(0))
	ev := platform.NewEvents()
	vp := platform.NewViewport(ev, 64, 48, 48)
	surface, err := NewSurface(64, 48, 2)
	require.NoError(t, err)
	defer surface.Close()

	_, cancel := MountField(sched, ev, surface, testAurora(t), testParticles(t))
	assert.Equal(t, 1, ev.ListenerCount(platform.Resize))
	assert.Equal(t, 1, sched.Len())

	vp.Resize(80, 60)
	w, h := surface.PixelSize()
	assert.Equal(t, 160, w)
	assert.Equal(t, 120, h)

	cancel()
	cancel()
	assert.Zero(t, ev.ListenerCount(platform.Resize))
	sched.Frame()
	assert.Zero(t, sched.Len())
}

func TestMountFieldWithoutSurface(t *testing.T) {
	sched := clock.NewScheduler(clock.NewStubSource(0))
	ev := platform.NewEvents()

	r, cancel := MountField(sched, ev, nil, testAurora(t))
	assert.Equal(t, Idle, r.State())
	assert.Zero(t, ev.TotalListeners())
	assert.Zero(t, sched.Len())
	cancel()
	assert.Equal(t, Idle, r.State())
}

func TestFloatIsPeriodic(t *testing.T) {
	dy, rot := Float(0, 20, 20)
	assert.Zero(t, dy)
	assert.Zero(t, rot)

	dy, rot = Float(10, 20, 20)
	assert.InDelta(t, -20, dy, 1e-9)
	assert.InDelta(t, 180, rot, 1e-9)

	a, _ := Float(3, 20, 20)
	b, _ := Float(23, 20, 20)
	assert.InDelta(t, a, b, 1e-9)
}

func TestParticlesWrapAndStayDeterministic(t *testing.T) {
	p := testParticles(t)
	q := testParticles(t)
	require.Len(t, p.Items(), 30)
	assert.Equal(t, p.Items(), q.Items(), "same seed, same field")

	for _, it := range p.Items() {
		assert.GreaterOrEqual(t, it.Size, 2.0)
		assert.LessOrEqual(t, it.Size, 6.0)
		assert.GreaterOrEqual(t, it.Period, 15.0)
		assert.LessOrEqual(t, it.Period, 35.0)
	}
	assert.Equal(t, p.Items()[0].Color, p.Items()[3].Color, "palette cycles by index")

	for i := 0; i < 60*40; i++ {
		p.Advance()
	}
	for _, it := range p.Items() {
		assert.GreaterOrEqual(t, it.Phase, 0.0)
		assert.Less(t, it.Phase, it.Period)
	}
}

func TestParticleDelayOffsetsPhase(t *testing.T) {
	p := testParticles(t)
	items := p.Items()
	assert.Zero(t, items[0].Phase)
	assert.InDelta(t, items[1].Period-0.5, items[1].Phase, 1e-9)
}
