package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Transition phases.
const (
	FadeIdle = iota
	FadeOut
	FadeIn
)

// Transition fades the screen to black, runs a callback while it is fully
// dark, then fades back. The session uses it for level changes and
// respawns.
type Transition struct {
	Phase    int
	Frames   int
	Duration int
	// Reason is what started the fade, e.g. the next level name.
	Reason string

	onDark func(reason string)
}

func NewTransition(duration int) *Transition {
	if duration <= 0 {
		duration = 20
	}
	return &Transition{Duration: duration}
}

func (t *Transition) Active() bool { return t.Phase != FadeIdle }

// Start begins a fade. onDark runs once, when the screen is fully black.
// Starting while a fade is running is ignored.
func (t *Transition) Start(reason string, onDark func(reason string)) bool {
	if t.Active() {
		return false
	}
	t.Phase = FadeOut
	t.Frames = 0
	t.Reason = reason
	t.onDark = onDark
	return true
}

// Update advances one frame and reports whether the world should stay
// frozen.
func (t *Transition) Update() bool {
	if !t.Active() {
		return false
	}
	t.Frames++
	if t.Frames < t.Duration {
		return true
	}
	t.Frames = 0
	switch t.Phase {
	case FadeOut:
		t.Phase = FadeIn
		if t.onDark != nil {
			t.onDark(t.Reason)
		}
	case FadeIn:
		t.Phase = FadeIdle
		t.Reason = ""
		t.onDark = nil
	}
	return true
}

// Alpha is the overlay opacity for the current frame.
func (t *Transition) Alpha() float64 {
	f := min(float64(t.Frames)/float64(t.Duration), 1)
	switch t.Phase {
	case FadeOut:
		return f
	case FadeIn:
		return 1 - f
	}
	return 0
}

func (t *Transition) Draw(screen *ebiten.Image) {
	a := t.Alpha()
	if screen == nil || a <= 0 {
		return
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()),
		color.RGBA{A: uint8(a * 0xff)}, false)
}
