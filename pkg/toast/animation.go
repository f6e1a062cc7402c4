package toast

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fps is the frame rate used for appear, disappear and snap-back animations.
const fps = 30

const frameInterval = time.Second / fps

// Curve maps linear progress in [0, 1] to eased progress in [0, 1].
type Curve struct {
	Name string
	Fn   func(float64) float64
}

// Built-in curves.
var (
	Linear    = Curve{Name: "linear", Fn: func(t float64) float64 { return t }}
	EaseIn    = Curve{Name: "ease-in", Fn: func(t float64) float64 { return t * t }}
	EaseOut   = Curve{Name: "ease-out", Fn: func(t float64) float64 { return 1 - (1-t)*(1-t) }}
	EaseInOut = Curve{Name: "ease-in-out", Fn: func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	}}
)

var curves = []Curve{Linear, EaseIn, EaseOut, EaseInOut}

// ParseCurve looks up a built-in curve by name.
func ParseCurve(s string) (Curve, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	names := make([]string, 0, len(curves))
	for _, c := range curves {
		if c.Name == s {
			return c, nil
		}
		names = append(names, c.Name)
	}
	return EaseOut, fmt.Errorf("unknown curve %q (want one of %s)", s, strings.Join(names, ", "))
}

// At evaluates the curve, clamping t to [0, 1]. A zero Curve is linear.
func (c Curve) At(t float64) float64 {
	t = min(max(t, 0), 1)
	if c.Fn == nil {
		return t
	}
	return c.Fn(t)
}

// Animation describes how the toast enters and leaves.
type Animation struct {
	Duration time.Duration
	Curve    Curve
}

// DefaultAnimation is a short ease-out.
var DefaultAnimation = Animation{Duration: 200 * time.Millisecond, Curve: EaseOut}

// frames returns the number of frames the animation spans. Zero means the
// change is applied immediately.
func (a Animation) frames() int {
	if a.Duration <= 0 {
		return 0
	}
	return max(int(a.Duration/frameInterval), 1)
}

type animKind int

const (
	animNone animKind = iota
	animAppear
	animDisappear
	animSnapBack
)

// animation tracks one running animation. Progress is derived from frame
// counts rather than wall time so it stays deterministic under test.
type animation struct {
	kind   animKind
	frame  int
	frames int
	tag    int

	// snap-back origin
	fromX, fromY int
}

func (a animation) running() bool { return a.kind != animNone }

// linear returns the raw completed fraction of the animation.
func (a animation) linear() float64 {
	if a.frames == 0 {
		return 1
	}
	return float64(a.frame) / float64(a.frames)
}

// frameMsg advances the animation of the component with the given id.
type frameMsg struct {
	id  int
	tag int
}

// scheduler arms a one-shot timer that delivers fn's message. tea.Tick in
// production; tests substitute a recorder.
type scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}
