package toast

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Transition selects how the toast animates in and out.
type Transition int

const (
	TransitionSlide Transition = iota
	TransitionScale
	TransitionSkew
	TransitionFade
)

// strategy renders one animation frame of a toast. progress is 0 when fully
// hidden and 1 when fully shown. The returned offset is added to the toast's
// resting position.
type strategy interface {
	frame(block string, progress float64, align Alignment) (out string, dx, dy int)
	draggable() bool
}

var strategies = map[Transition]strategy{
	TransitionSlide: slide{},
	TransitionScale: scale{},
	TransitionSkew:  skew{},
	TransitionFade:  fade{},
}

var transitionNames = map[Transition]string{
	TransitionSlide: "slide",
	TransitionScale: "scale",
	TransitionSkew:  "skew",
	TransitionFade:  "fade",
}

func (t Transition) String() string {
	if name, ok := transitionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Transition(%d)", int(t))
}

// TransitionNames lists the accepted transition names.
func TransitionNames() []string {
	return []string{"slide", "scale", "skew", "fade"}
}

// ParseTransition converts a name such as "slide" or "fade".
func ParseTransition(s string) (Transition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range transitionNames {
		if name == s {
			return t, nil
		}
	}
	return TransitionSlide, fmt.Errorf("unknown transition %q (want one of %s)", s, strings.Join(TransitionNames(), ", "))
}

// Draggable reports whether toasts using this transition can be dragged
// away. Skew toasts ignore drags.
func (t Transition) Draggable() bool {
	return t.strategy().draggable()
}

func (t Transition) strategy() strategy {
	if s, ok := strategies[t]; ok {
		return s
	}
	return slide{}
}

// slide moves the toast in from the edge it is anchored to. Centred toasts
// rise from below.
type slide struct{}

func (slide) draggable() bool { return true }

func (slide) frame(block string, p float64, align Alignment) (string, int, int) {
	if p >= 1 {
		return block, 0, 0
	}
	w, h := lipgloss.Size(block)
	hidden := 1 - p
	dx := int(math.Round(hidden * float64(w+1) * float64(align.horizontal())))
	dy := int(math.Round(hidden * float64(h+1) * float64(align.vertical())))
	if align.horizontal() == 0 && align.vertical() == 0 {
		dy = int(math.Round(hidden * float64(h+1)))
	}
	return block, dx, dy
}

// scale grows the toast from its centre.
type scale struct{}

func (scale) draggable() bool { return true }

func (scale) frame(block string, p float64, _ Alignment) (string, int, int) {
	if p >= 1 {
		return block, 0, 0
	}
	if p <= 0 {
		return "", 0, 0
	}
	lines := strings.Split(block, "\n")
	w, h := lipgloss.Size(block)

	rows := max(int(math.Ceil(p*float64(h))), 1)
	cols := max(int(math.Ceil(p*float64(w))), 1)
	top := (h - rows) / 2
	left := (w - cols) / 2

	out := make([]string, 0, rows)
	for _, line := range lines[top : top+rows] {
		line = padRight(line, w)
		out = append(out, ansi.TruncateLeft(ansi.Truncate(line, left+cols, ""), left, ""))
	}
	return strings.Join(out, "\n"), left, top
}

// skew shears the toast sideways, straightening as it appears.
type skew struct{}

func (skew) draggable() bool { return false }

func (skew) frame(block string, p float64, _ Alignment) (string, int, int) {
	if p >= 1 {
		return block, 0, 0
	}
	if p <= 0 {
		return "", 0, 0
	}
	lines := strings.Split(block, "\n")
	hidden := 1 - p
	for i, line := range lines {
		shift := int(math.Round(hidden * float64(len(lines)-1-i) * 2))
		lines[i] = strings.Repeat(" ", shift) + line
	}
	return strings.Join(lines, "\n"), 0, 0
}

// fade renders the toast muted until it is fully shown.
type fade struct{}

func (fade) draggable() bool { return true }

var fadeStyle = lipgloss.NewStyle().Foreground(Muted)

func (fade) frame(block string, p float64, _ Alignment) (string, int, int) {
	switch {
	case p >= 1:
		return block, 0, 0
	case p <= 0:
		return "", 0, 0
	case p < 0.5:
		lines := strings.Split(ansi.Strip(block), "\n")
		for i, line := range lines {
			lines[i] = fadeStyle.Render(line)
		}
		return strings.Join(lines, "\n"), 0, 0
	default:
		return ansi.Strip(block), 0, 0
	}
}
