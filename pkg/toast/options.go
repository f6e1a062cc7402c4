package toast

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// DefaultDragThreshold is the drag distance, in rows, past which a drag
// dismisses the toast. Horizontal drags need twice as many columns.
const DefaultDragThreshold = 2

// Backdrop is a full-bounds layer drawn behind the toast. Tapping it
// dismisses the toast.
type Backdrop struct {
	// Color recolours the host frame behind the toast. Nil renders it faint.
	Color lipgloss.TerminalColor
}

// KeyMap defines keyboard bindings for a visible toast.
type KeyMap struct {
	Dismiss key.Binding
}

// DefaultKeyMap dismisses on esc.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
	}
}

// Options configures a toast. The component reads it and never modifies it.
type Options struct {
	// HideAfter dismisses the toast after it has been visible this long.
	// Zero disables auto-hide.
	HideAfter time.Duration

	// DismissOnTap dismisses the toast when its content is tapped.
	// Nil means true.
	DismissOnTap *bool

	Alignment  Alignment
	Animation  Animation
	Backdrop   *Backdrop
	Transition Transition

	// DragThreshold in rows; zero means DefaultDragThreshold.
	DragThreshold int

	// Margin from the anchored edges, in cells.
	Margin int

	KeyMap KeyMap
	Logger *slog.Logger
}

// Option is a functional option for NewOptions.
type Option func(*Options)

// DefaultOptions returns a top-aligned sliding toast with no auto-hide.
func DefaultOptions() Options {
	return Options{
		Alignment:  AlignTop,
		Animation:  DefaultAnimation,
		Transition: TransitionSlide,
		Margin:     1,
		KeyMap:     DefaultKeyMap(),
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithHideAfter enables auto-hide after d. Non-positive values disable it.
func WithHideAfter(d time.Duration) Option {
	return func(o *Options) {
		o.HideAfter = max(d, 0)
	}
}

// WithDismissOnTap sets whether tapping the content dismisses the toast.
func WithDismissOnTap(dismiss bool) Option {
	return func(o *Options) {
		o.DismissOnTap = &dismiss
	}
}

// WithAlignment anchors the toast.
func WithAlignment(a Alignment) Option {
	return func(o *Options) {
		o.Alignment = a
	}
}

// WithAnimation sets the enter/exit animation.
func WithAnimation(a Animation) Option {
	return func(o *Options) {
		o.Animation = a
	}
}

// WithBackdrop draws a tappable backdrop behind the toast.
func WithBackdrop(b Backdrop) Option {
	return func(o *Options) {
		o.Backdrop = &b
	}
}

// WithTransition selects the transition variant.
func WithTransition(t Transition) Option {
	return func(o *Options) {
		o.Transition = t
	}
}

// WithDragThreshold sets the drag-to-dismiss distance in rows.
func WithDragThreshold(rows int) Option {
	return func(o *Options) {
		if rows > 0 {
			o.DragThreshold = rows
		}
	}
}

// WithMargin sets the distance from the anchored edges.
func WithMargin(cells int) Option {
	return func(o *Options) {
		if cells >= 0 {
			o.Margin = cells
		}
	}
}

// WithKeyMap replaces the keyboard bindings.
func WithKeyMap(km KeyMap) Option {
	return func(o *Options) {
		o.KeyMap = km
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// TapDismisses resolves DismissOnTap, defaulting to true.
func (o Options) TapDismisses() bool {
	return o.DismissOnTap == nil || *o.DismissOnTap
}

func (o Options) dragThreshold() int {
	if o.DragThreshold <= 0 {
		return DefaultDragThreshold
	}
	return o.DragThreshold
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
