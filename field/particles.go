package field

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"
)

// ParticleConfig describes the floating particle layer.
type ParticleConfig struct {
	Count            int
	MinSize, MaxSize float64
	MinPeriod        float64 // seconds
	MaxPeriod        float64 // seconds
	DelayPerParticle float64 // seconds of phase lag per index
	Rise             float64 // px at the top of the float
	Step             float64 // seconds of phase per tick
	Palette          []string
	Alpha            float64
	Seed             uint64
}

// Particle is one decorative point. BaseX and BaseY are fractions of the
// surface size; Phase is in seconds within Period.
type Particle struct {
	BaseX, BaseY float64
	Size         float64
	Phase        float64
	Period       float64
	Color        gg.RGBA
}

// Float returns the vertical offset (px, negative is up) and rotation
// (degrees) for a phase. It is periodic in phase, so particles loop without
// drift.
func Float(phase, period, rise float64) (dy, rotation float64) {
	if period <= 0 {
		return 0, 0
	}
	u := (1 - math.Cos(2*math.Pi*phase/period)) / 2
	return -rise * u, 180 * u
}

// Particles advances and paints a fixed set of particles.
type Particles struct {
	cfg   ParticleConfig
	items []Particle
}

// NewParticles seeds Count particles from cfg.
func NewParticles(cfg ParticleConfig) (*Particles, error) {
	if len(cfg.Palette) == 0 {
		return nil, errors.New("particles: empty palette")
	}
	palette, err := parseStops(cfg.Palette, cfg.Alpha)
	if err != nil {
		return nil, err
	}
	if cfg.MaxPeriod < cfg.MinPeriod {
		cfg.MinPeriod, cfg.MaxPeriod = cfg.MaxPeriod, cfg.MinPeriod
	}
	if cfg.MinPeriod <= 0 {
		return nil, errors.New("particles: period must be positive")
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	items := make([]Particle, cfg.Count)
	for i := range items {
		period := cfg.MinPeriod + rng.Float64()*(cfg.MaxPeriod-cfg.MinPeriod)
		items[i] = Particle{
			BaseX:  rng.Float64(),
			BaseY:  rng.Float64(),
			Size:   cfg.MinSize + rng.Float64()*(cfg.MaxSize-cfg.MinSize),
			Period: period,
			Phase:  wrap(-float64(i)*cfg.DelayPerParticle, period),
			Color:  palette[i%len(palette)],
		}
	}
	return &Particles{cfg: cfg, items: items}, nil
}

func wrap(phase, period float64) float64 {
	phase = math.Mod(phase, period)
	if phase < 0 {
		phase += period
	}
	return phase
}

// Advance moves every particle's phase by the fixed step, modulo its period.
func (p *Particles) Advance() {
	for i := range p.items {
		it := &p.items[i]
		it.Phase = wrap(it.Phase+p.cfg.Step, it.Period)
	}
}

// Items returns the particles. Callers must not modify them.
func (p *Particles) Items() []Particle {
	return p.items
}

// Position maps particle i to surface coordinates for a w x h canvas.
func (p *Particles) Position(i int, w, h float64) (x, y, rotation float64) {
	it := p.items[i]
	dy, rot := Float(it.Phase, it.Period, p.cfg.Rise)
	return it.BaseX * w, it.BaseY*h + dy, rot
}

// Paint draws every particle as a filled circle.
func (p *Particles) Paint(s *Surface) error {
	dc := s.ctx
	w, h := s.Size()
	for i, it := range p.items {
		x, y, _ := p.Position(i, w, h)
		dc.SetFillBrush(gg.Solid(it.Color))
		dc.DrawCircle(x, y, it.Size/2)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
