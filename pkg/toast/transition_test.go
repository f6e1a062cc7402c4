package toast

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTransitionDraggable(t *testing.T) {
	tests := []struct {
		tr   Transition
		want bool
	}{
		{TransitionSlide, true},
		{TransitionScale, true},
		{TransitionSkew, false},
		{TransitionFade, true},
	}
	for _, tt := range tests {
		if got := tt.tr.Draggable(); got != tt.want {
			t.Errorf("%v.Draggable() = %v, want %v", tt.tr, got, tt.want)
		}
	}
}

func TestParseTransition(t *testing.T) {
	for _, name := range TransitionNames() {
		tr, err := ParseTransition(strings.ToUpper(name))
		if err != nil {
			t.Fatalf("ParseTransition(%q) error: %v", name, err)
		}
		if tr.String() != name {
			t.Errorf("ParseTransition(%q) = %v", name, tr)
		}
	}
	if _, err := ParseTransition("wobble"); err == nil {
		t.Error("expected error for unknown transition")
	}
}

const block3x5 = "abcde\nfghij\nklmno"

func TestSlideFrame(t *testing.T) {
	tests := []struct {
		align  Alignment
		p      float64
		dx, dy int
	}{
		{AlignTop, 1, 0, 0},
		{AlignTop, 0, 0, -4},
		{AlignBottom, 0, 0, 4},
		{AlignBottom, 0.5, 0, 2},
		{AlignLeading, 0, -6, 0},
		{AlignTrailing, 0, 6, 0},
		{AlignTopTrailing, 0, 6, -4},
		{AlignCenter, 0, 0, 4},
	}
	for _, tt := range tests {
		out, dx, dy := slide{}.frame(block3x5, tt.p, tt.align)
		if out != block3x5 {
			t.Errorf("slide changed the block: %q", out)
		}
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("slide(%v, %.1f) offset = (%d, %d), want (%d, %d)", tt.align, tt.p, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestScaleFrame(t *testing.T) {
	out, dx, dy := scale{}.frame(block3x5, 0.4, AlignTop)
	// ceil(0.4*3)=2 rows from row 0, ceil(0.4*5)=2 cols from col 1
	if out != "bc\ngh" {
		t.Errorf("scale frame = %q, want %q", out, "bc\ngh")
	}
	if dx != 1 || dy != 0 {
		t.Errorf("scale offset = (%d, %d), want (1, 0)", dx, dy)
	}

	if out, _, _ := (scale{}).frame(block3x5, 0, AlignTop); out != "" {
		t.Errorf("scale at 0 = %q, want empty", out)
	}
	if out, _, _ := (scale{}).frame(block3x5, 1, AlignTop); out != block3x5 {
		t.Errorf("scale at 1 = %q, want block", out)
	}
}

func TestSkewFrame(t *testing.T) {
	out, _, _ := skew{}.frame(block3x5, 0.5, AlignTop)
	want := "  abcde\n fghij\nklmno"
	if out != want {
		t.Errorf("skew frame = %q, want %q", out, want)
	}
}

func TestFadeFrame(t *testing.T) {
	if out, _, _ := (fade{}).frame(block3x5, 0, AlignTop); out != "" {
		t.Errorf("fade at 0 = %q, want empty", out)
	}
	out, _, _ := fade{}.frame(block3x5, 0.25, AlignTop)
	if ansi.Strip(out) != block3x5 {
		t.Errorf("fade text = %q, want %q", ansi.Strip(out), block3x5)
	}
	if out, _, _ := (fade{}).frame(block3x5, 1, AlignTop); out != block3x5 {
		t.Errorf("fade at 1 = %q, want block", out)
	}
}

func TestCurves(t *testing.T) {
	for _, c := range []Curve{Linear, EaseIn, EaseOut, EaseInOut} {
		if got := c.At(0); got != 0 {
			t.Errorf("%s.At(0) = %v, want 0", c.Name, got)
		}
		if got := c.At(1); got != 1 {
			t.Errorf("%s.At(1) = %v, want 1", c.Name, got)
		}
		if got := c.At(2); got != 1 {
			t.Errorf("%s.At(2) = %v, want clamped 1", c.Name, got)
		}
	}
	if got := (Curve{}).At(0.3); got != 0.3 {
		t.Errorf("zero curve At(0.3) = %v, want 0.3", got)
	}
	if _, err := ParseCurve("ease-in-out"); err != nil {
		t.Errorf("ParseCurve error: %v", err)
	}
	if _, err := ParseCurve("bounce"); err == nil {
		t.Error("expected error for unknown curve")
	}
}

func TestAnimationFrames(t *testing.T) {
	if n := (Animation{}).frames(); n != 0 {
		t.Errorf("zero animation frames = %d, want 0", n)
	}
	if n := DefaultAnimation.frames(); n != 6 {
		t.Errorf("default animation frames = %d, want 6", n)
	}
	if n := (Animation{Duration: 1}).frames(); n != 1 {
		t.Errorf("tiny animation frames = %d, want 1", n)
	}
}
