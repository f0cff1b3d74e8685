package motion

import (
	"errors"
	"math"

	"github.com/automoto/motionfx/clock"
)

// ErrNoWords is returned for a rotating text without words.
var ErrNoWords = errors.New("rotating text: no words")

// RotatingText cycles through words, one per interval.
type RotatingText struct {
	words    []string
	interval float64
	start    float64
	index    int
}

// MountRotatingText starts rotating from the first word.
func MountRotatingText(sched *clock.Scheduler, words []string, intervalMs float64) (*RotatingText, func(), error) {
	if len(words) == 0 {
		return nil, func() {}, ErrNoWords
	}
	if intervalMs <= 0 {
		intervalMs = 2500
	}
	r := &RotatingText{
		words:    append([]string(nil), words...),
		interval: intervalMs,
		start:    sched.Now(),
	}
	cancel := sched.Start(r.tick)
	return r, cancel, nil
}

func (r *RotatingText) tick(ts float64) {
	steps := int(math.Floor((ts - r.start) / r.interval))
	if steps < 0 {
		steps = 0
	}
	r.index = steps % len(r.words)
}

// Index returns the current word index.
func (r *RotatingText) Index() int {
	return r.index
}

// Word returns the current word.
func (r *RotatingText) Word() string {
	return r.words[r.index]
}

// Typewriter reveals text one rune per interval and then stops ticking.
type Typewriter struct {
	runes  []rune
	speed  float64
	start  float64
	shown  int
	cancel func()
}

// MountTypewriter starts typing text at speedMs per rune.
func MountTypewriter(sched *clock.Scheduler, text string, speedMs float64) (*Typewriter, func()) {
	if speedMs <= 0 {
		speedMs = 100
	}
	t := &Typewriter{runes: []rune(text), speed: speedMs, start: sched.Now()}
	if len(t.runes) == 0 {
		return t, func() {}
	}
	t.cancel = sched.Start(t.tick)
	return t, t.stop
}

func (t *Typewriter) tick(ts float64) {
	n := int(math.Floor((ts - t.start) / t.speed))
	if n > len(t.runes) {
		n = len(t.runes)
	}
	if n > t.shown {
		t.shown = n
	}
	if t.shown == len(t.runes) {
		t.stop()
	}
}

func (t *Typewriter) stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Text returns the typed prefix.
func (t *Typewriter) Text() string {
	return string(t.runes[:t.shown])
}

// Done reports whether the full text is shown.
func (t *Typewriter) Done() bool {
	return t.shown == len(t.runes)
}
