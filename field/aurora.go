package field

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
)

// AuroraConfig shapes the wave gradient.
type AuroraConfig struct {
	// Stops are hex colours spread evenly across the gradient.
	Stops []string
	// StopAlpha is applied to every stop.
	StopAlpha float64
	// Amplitude multiplies WaveScale to give the wave height in px.
	Amplitude float64
	WaveScale float64
	// Frequency is k in sin(x*k + time).
	Frequency float64
	// Baseline is the wave's rest line as a fraction of the height.
	Baseline float64
	// SampleSpacing is the px distance between wave samples.
	SampleSpacing float64
	// Step is the fixed time increment per tick.
	Step float64
}

// Frame is the aurora's animated state.
type Frame struct {
	Time      float64
	Stops     []gg.RGBA
	Amplitude float64
}

// Aurora paints a gradient filled below a travelling sine wave.
type Aurora struct {
	cfg   AuroraConfig
	frame Frame
	ticks uint64
}

// NewAurora validates cfg and parses its colour stops.
func NewAurora(cfg AuroraConfig) (*Aurora, error) {
	if len(cfg.Stops) == 0 {
		return nil, errors.New("aurora: no colour stops")
	}
	stops, err := parseStops(cfg.Stops, cfg.StopAlpha)
	if err != nil {
		return nil, err
	}
	if cfg.SampleSpacing <= 0 {
		cfg.SampleSpacing = 10
	}
	return &Aurora{
		cfg:   cfg,
		frame: Frame{Stops: stops, Amplitude: cfg.Amplitude},
	}, nil
}

// Advance moves the time accumulator by the fixed step.
func (a *Aurora) Advance() {
	a.frame.Time += a.cfg.Step
	a.ticks++
}

// Frame returns the current state.
func (a *Aurora) Frame() Frame {
	return a.frame
}

// Ticks returns how many times Advance has run.
func (a *Aurora) Ticks() uint64 {
	return a.ticks
}

// WaveY is the wave height at x on a canvas h px tall.
func (a *Aurora) WaveY(x, h float64) float64 {
	return math.Sin(x*a.cfg.Frequency+a.frame.Time)*a.frame.Amplitude*a.cfg.WaveScale + h*a.cfg.Baseline
}

// Paint fills the area under the wave with the diagonal gradient.
func (a *Aurora) Paint(s *Surface) error {
	dc := s.ctx
	w, h := s.Size()

	grad := gg.NewLinearGradientBrush(0, 0, w, h)
	n := len(a.frame.Stops)
	for i, c := range a.frame.Stops {
		offset := 0.0
		if n > 1 {
			offset = float64(i) / float64(n-1)
		}
		grad.AddColorStop(offset, c)
	}
	dc.SetFillBrush(grad)

	step := a.cfg.SampleSpacing
	dc.MoveTo(0, a.WaveY(0, h))
	for x := step; x <= w; x += step {
		dc.LineTo(x, a.WaveY(x, h))
	}
	dc.LineTo(w, h)
	dc.LineTo(0, h)
	dc.ClosePath()
	return dc.Fill()
}
