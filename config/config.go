package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer; renderers draw in registration order.
const Default ecs.LayerID = 0

// Config is the window configuration.
type Config struct {
	Width  int
	Height int
	Title  string
}

// CursorConfig tunes the trailing cursor.
type CursorConfig struct {
	DotSmoothing  float64 // fraction of the remaining distance per frame
	RingSmoothing float64
	RingWidth     float32
	DotColor      color.RGBA
	RingColor     string // hex, blended towards HoverColor while hovering
	HoverColor    string
	HoverEase     float64 // smoothing of the hover colour blend
	HideSystem    bool    // hide the OS cursor while the custom one is mounted
}

// RevealConfig controls section entrances.
type RevealConfig struct {
	Threshold  float64
	DurationMs float64
	StaggerMs  float64 // extra delay per element inside one section
	Distance   float64 // px the element rises while fading in
}

// CounterConfig controls count-up numbers.
type CounterConfig struct {
	Threshold         float64
	DefaultDurationMs float64
}

// ScrollConfig controls the progress bar and scrolling input.
type ScrollConfig struct {
	BarHeight  float32
	BarColor   color.RGBA
	TrackColor color.RGBA
	WheelStep  float64 // px per wheel notch
	KeyStep    float64 // px per frame while a scroll key is held
	SmoothMs   float64 // duration of a nav jump
	NavHeight  float64 // sections land this far below the top edge
}

// AuroraConfig is the wave gradient behind the page.
type AuroraConfig struct {
	Stops         []string
	StopAlpha     float64
	Amplitude     float64
	WaveScale     float64
	Frequency     float64
	Baseline      float64
	SampleSpacing float64
	Step          float64
}

// ParticleConfig is the floating particle layer.
type ParticleConfig struct {
	Count            int
	MinSize          float64
	MaxSize          float64
	MinPeriod        float64
	MaxPeriod        float64
	DelayPerParticle float64
	Rise             float64
	Step             float64
	Palette          []string
	Alpha            float64
	Seed             uint64
}

// TextConfig times the headline effects.
type TextConfig struct {
	RotateIntervalMs float64
	TypeSpeedMs      float64
}

// PreloaderConfig times the start-up overlay.
type PreloaderConfig struct {
	MinDelayMs float64
	ExitMs     float64
	Background color.RGBA
	BarColor   color.RGBA
}

// MotionConfig holds the global motion switches.
type MotionConfig struct {
	// RespectReducedMotion turns off the cursor and field and skips tweens
	// when the platform reports a reduced-motion preference.
	RespectReducedMotion bool
	// ReducedMotion is the platform preference; desktop hosts have no
	// system query so it is a setting.
	ReducedMotion bool
}

// LayoutConfig places page content in document coordinates.
type LayoutConfig struct {
	Margin        float64
	HeroHeight    float64
	TitleGap      float64
	LineHeight    float64
	CounterWidth  float64
	CounterHeight float64
	CardWidth     float64
	CardHeight    float64
	CardGap       float64
	MaxTilt       float64 // degrees, used to skew the drawn card
}

// DebugConfig toggles developer overlays.
type DebugConfig struct {
	Overlay bool
}

var C *Config

var (
	Cursor    CursorConfig
	Reveal    RevealConfig
	Counter   CounterConfig
	Scroll    ScrollConfig
	Aurora    AuroraConfig
	Particles ParticleConfig
	Text      TextConfig
	Preloader PreloaderConfig
	Motion    MotionConfig
	Layout    LayoutConfig
	Debug     DebugConfig
)

// Colors
var (
	Background = color.RGBA{R: 10, G: 10, B: 18, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Muted      = color.RGBA{R: 160, G: 160, B: 180, A: 255}
	Indigo     = color.RGBA{R: 102, G: 126, B: 234, A: 255}
	Violet     = color.RGBA{R: 118, G: 75, B: 162, A: 255}
	CardFill   = color.RGBA{R: 24, G: 24, B: 36, A: 230}
	CardEdge   = color.RGBA{R: 70, G: 70, B: 100, A: 255}
	DebugColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 800,
		Title:  "motionfx",
	}

	Cursor = CursorConfig{
		DotSmoothing:  0.35,
		RingSmoothing: 0.12,
		RingWidth:     1.5,
		DotColor:      White,
		RingColor:     "#667eea",
		HoverColor:    "#f093fb",
		HoverEase:     0.2,
		HideSystem:    true,
	}

	Reveal = RevealConfig{
		Threshold:  0.15,
		DurationMs: 800,
		StaggerMs:  100,
		Distance:   28,
	}

	Counter = CounterConfig{
		Threshold:         0.3,
		DefaultDurationMs: 2000,
	}

	Scroll = ScrollConfig{
		BarHeight:  3,
		BarColor:   Indigo,
		TrackColor: color.RGBA{R: 255, G: 255, B: 255, A: 20},
		WheelStep:  60,
		KeyStep:    14,
		SmoothMs:   700,
		NavHeight:  44,
	}

	Aurora = AuroraConfig{
		Stops:         []string{"#667eea", "#764ba2", "#667eea"},
		StopAlpha:     0x40 / 255.0,
		Amplitude:     1.2,
		WaveScale:     50,
		Frequency:     0.01,
		Baseline:      0.5,
		SampleSpacing: 10,
		Step:          0.01,
	}

	Particles = ParticleConfig{
		Count:            30,
		MinSize:          2,
		MaxSize:          6,
		MinPeriod:        15,
		MaxPeriod:        35,
		DelayPerParticle: 0.5,
		Rise:             20,
		Step:             1.0 / 60,
		Palette:          []string{"#667eea", "#764ba2", "#f093fb"},
		Alpha:            0.6,
		Seed:             1,
	}

	Text = TextConfig{
		RotateIntervalMs: 2500,
		TypeSpeedMs:      100,
	}

	Preloader = PreloaderConfig{
		MinDelayMs: 1400,
		ExitMs:     600,
		Background: color.RGBA{R: 5, G: 5, B: 10, A: 255},
		BarColor:   Indigo,
	}

	Motion = MotionConfig{
		RespectReducedMotion: false,
	}

	Layout = LayoutConfig{
		Margin:        96,
		HeroHeight:    800,
		TitleGap:      56,
		LineHeight:    28,
		CounterWidth:  220,
		CounterHeight: 120,
		CardWidth:     320,
		CardHeight:    200,
		CardGap:       32,
		MaxTilt:       5,
	}
}
