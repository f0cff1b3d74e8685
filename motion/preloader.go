package motion

import (
	"github.com/automoto/motionfx/clock"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PreloaderPhase is the preloader's lifecycle stage.
type PreloaderPhase int

const (
	PreloaderLoading PreloaderPhase = iota
	PreloaderExiting
	PreloaderHidden
)

// Preloader holds the splash until content is ready and a minimum branding
// time has passed, then plays an exit and hides.
type Preloader struct {
	minDelay float64
	exit     float64
	start    float64
	last     float64
	exitAt   float64
	ready    bool
	phase    PreloaderPhase
	bar      *gween.Tween
	barValue float64
	cancel   func()
}

// MountPreloader starts the preloader clock.
func MountPreloader(sched *clock.Scheduler, minDelayMs, exitMs float64) (*Preloader, func()) {
	p := &Preloader{
		minDelay: minDelayMs,
		exit:     exitMs,
		start:    sched.Now(),
		last:     sched.Now(),
		bar:      gween.New(0, 1, float32(maxf(minDelayMs, 1)), ease.InOutQuad),
	}
	p.cancel = sched.Start(p.tick)
	return p, p.stop
}

// Ready marks content (fonts, assets) as loaded.
func (p *Preloader) Ready() {
	p.ready = true
}

func (p *Preloader) tick(ts float64) {
	dt := ts - p.last
	p.last = ts

	switch p.phase {
	case PreloaderLoading:
		v, _ := p.bar.Update(float32(dt))
		p.barValue = float64(v)
		if p.ready && ts-p.start >= p.minDelay {
			p.phase = PreloaderExiting
			p.exitAt = ts
			p.barValue = 1
		}
	case PreloaderExiting:
		if ts-p.exitAt >= p.exit {
			p.phase = PreloaderHidden
			p.stop()
		}
	}
}

func (p *Preloader) stop() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Phase returns the current stage.
func (p *Preloader) Phase() PreloaderPhase {
	return p.phase
}

// Bar returns the loading bar fill in [0, 1].
func (p *Preloader) Bar() float64 {
	return p.barValue
}

// Opacity is 1 while loading and fades to 0 across the exit.
func (p *Preloader) Opacity() float64 {
	switch p.phase {
	case PreloaderLoading:
		return 1
	case PreloaderExiting:
		if p.exit <= 0 {
			return 0
		}
		return 1 - clamp01((p.last-p.exitAt)/p.exit)
	}
	return 0
}

// Scale grows from 1 to 1.05 during the exit.
func (p *Preloader) Scale() float64 {
	return 1 + 0.05*(1-p.Opacity())
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
