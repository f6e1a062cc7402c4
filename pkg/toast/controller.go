package toast

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Phase is the lifecycle state of a toast.
type Phase int

const (
	// PhaseIdle: no item, nothing on screen.
	PhaseIdle Phase = iota
	// PhaseVisible: an item is present; the auto-hide timer may be armed.
	PhaseVisible
	// PhaseDismissing: the item is gone and the exit animation is running.
	PhaseDismissing
)

func (p Phase) String() string {
	switch p {
	case PhaseVisible:
		return "visible"
	case PhaseDismissing:
		return "dismissing"
	default:
		return "idle"
	}
}

// Reason records what dismissed a toast.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonProgrammatic
	ReasonTimeout
	ReasonBackdrop
	ReasonTap
	ReasonDrag
	ReasonKey
)

func (r Reason) String() string {
	switch r {
	case ReasonProgrammatic:
		return "programmatic"
	case ReasonTimeout:
		return "timeout"
	case ReasonBackdrop:
		return "backdrop"
	case ReasonTap:
		return "tap"
	case ReasonDrag:
		return "drag"
	case ReasonKey:
		return "key"
	default:
		return "none"
	}
}

// timeoutMsg is delivered when an auto-hide timer fires.
type timeoutMsg struct {
	id  int
	seq int
}

// timerHandle identifies one armed auto-hide timer. Clearing the
// controller's handle cancels it: a timeoutMsg only dismisses when its seq
// matches the handle still held.
type timerHandle struct {
	seq int
}

// Controller runs the dismissal lifecycle of a single toast binding. It owns
// the auto-hide timer and funnels every dismissal trigger into Dismiss.
//
// All methods must be called from the Bubble Tea update loop.
type Controller[T any] struct {
	id        int
	binding   Binding[T]
	hideAfter time.Duration
	onDismiss func()
	log       *slog.Logger
	tick      scheduler
	drag      *DragEvaluator

	viewState  bool
	isInit     bool
	phase      Phase
	timer      *timerHandle
	seq        int
	lastReason Reason
}

// NewController creates a controller for b. onDismiss may be nil.
func NewController[T any](b Binding[T], opts Options, onDismiss func()) *Controller[T] {
	return &Controller[T]{
		id:        nextID(),
		binding:   b,
		hideAfter: opts.HideAfter,
		onDismiss: onDismiss,
		log:       opts.logger(),
		tick:      tea.Tick,
		drag:      NewDragEvaluator(opts.dragThreshold(), opts.Alignment),
	}
}

// ID identifies the controller in timer and frame messages.
func (c *Controller[T]) ID() int { return c.id }

// Phase returns the current lifecycle phase.
func (c *Controller[T]) Phase() Phase { return c.phase }

// Visible reports the last observed presence.
func (c *Controller[T]) Visible() bool { return c.viewState }

// Armed reports whether an auto-hide timer is pending.
func (c *Controller[T]) Armed() bool { return c.timer != nil }

// LastReason returns what caused the most recent dismissal.
func (c *Controller[T]) LastReason() Reason { return c.lastReason }

// Drag returns the drag evaluator whose offset Dismiss resets.
func (c *Controller[T]) Drag() *DragEvaluator { return c.drag }

// Item returns the bound item, if present.
func (c *Controller[T]) Item() (T, bool) { return c.binding.Get() }

func (c *Controller[T]) present() bool {
	_, ok := c.binding.Get()
	return ok
}

// Update observes the binding and handles timer messages. It returns the
// command arming a timer when the toast has just become visible.
func (c *Controller[T]) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(timeoutMsg); ok && msg.id == c.id {
		c.handleTimeout(msg)
	}
	return c.Observe()
}

// Observe compares the binding's presence with the last observed value.
//
// The first call performs setup. After that only a genuine change of
// presence has any effect, so repeated observations of a visible toast
// never re-arm or drop its timer.
func (c *Controller[T]) Observe() tea.Cmd {
	if !c.isInit {
		return c.setup()
	}

	present := c.present()
	if present == c.viewState {
		return nil
	}
	c.viewState = present

	if !present {
		// Cleared by the host rather than by Dismiss.
		c.cancelTimer()
		c.drag.Reset()
		if c.phase == PhaseVisible {
			c.phase = PhaseDismissing
		}
		c.log.Debug("toast cleared by host", "id", c.id)
		return nil
	}

	c.phase = PhaseVisible
	return c.armTimer()
}

func (c *Controller[T]) setup() tea.Cmd {
	c.isInit = true
	c.viewState = c.present()
	if !c.viewState {
		return nil
	}
	c.phase = PhaseVisible
	return c.armTimer()
}

func (c *Controller[T]) armTimer() tea.Cmd {
	if c.hideAfter <= 0 {
		return nil
	}
	c.cancelTimer()
	c.seq++
	c.timer = &timerHandle{seq: c.seq}

	msg := timeoutMsg{id: c.id, seq: c.seq}
	c.log.Debug("toast timer armed", "id", c.id, "seq", msg.seq, "after", c.hideAfter)
	return c.tick(c.hideAfter, func(time.Time) tea.Msg { return msg })
}

// cancelTimer releases the armed handle. Safe to call when nothing is armed.
func (c *Controller[T]) cancelTimer() {
	c.timer = nil
}

func (c *Controller[T]) handleTimeout(msg timeoutMsg) bool {
	if c.timer == nil || c.timer.seq != msg.seq {
		c.log.Debug("toast timer ignored", "id", c.id, "seq", msg.seq)
		return false
	}
	c.timer = nil
	return c.Dismiss(ReasonTimeout)
}

// Dismiss hides the toast: it cancels the timer, resets the drag offset,
// clears the binding and invokes the dismiss callback, in that order. It
// returns false without side effects when there is nothing to dismiss, so
// repeated calls invoke the callback once.
func (c *Controller[T]) Dismiss(reason Reason) bool {
	if !c.viewState && !c.present() {
		return false
	}

	c.cancelTimer()
	c.drag.Reset()

	var zero T
	c.binding.Set(zero, false)
	c.viewState = false
	c.phase = PhaseDismissing
	c.lastReason = reason

	c.log.Debug("toast dismissed", "id", c.id, "reason", reason.String())
	if c.onDismiss != nil {
		c.onDismiss()
	}
	return true
}

// Settle completes a dismissal once the exit animation has finished.
func (c *Controller[T]) Settle() {
	if c.phase == PhaseDismissing {
		c.phase = PhaseIdle
	}
}

// Teardown releases the timer when the toast is detached. The next Observe
// runs setup again.
func (c *Controller[T]) Teardown() {
	c.cancelTimer()
	c.drag.Reset()
	c.viewState = false
	c.isInit = false
	c.phase = PhaseIdle
	c.log.Debug("toast detached", "id", c.id)
}
