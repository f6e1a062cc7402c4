package toast

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/toast/pkg/toast/mouse"
)

// Hit region IDs registered during View.
const (
	regionBackdrop = "toast-backdrop"
	regionContent  = "toast-content"
)

// ShowMsg presents Item in every Model[T] that receives it.
type ShowMsg[T any] struct {
	Item T
}

// ShowCmd returns a command delivering ShowMsg.
func ShowCmd[T any](item T) tea.Cmd {
	return func() tea.Msg { return ShowMsg[T]{Item: item} }
}

// DismissMsg dismisses any visible toast that receives it.
type DismissMsg struct{}

// DismissCmd returns a command delivering DismissMsg.
func DismissCmd() tea.Cmd {
	return func() tea.Msg { return DismissMsg{} }
}

// Model is a toast attached to a host view. Route every message through
// Update and composite the host frame through View.
type Model[T any] struct {
	ctrl     *Controller[T]
	opts     Options
	content  func(T) string
	strategy strategy
	mouse    *mouse.Handler
	tick     scheduler

	anim   animation
	tagSeq int
	moved  bool

	// last item shown, rendered during the exit animation
	last    T
	hasLast bool

	width, height int
}

func newModel[T any](b Binding[T], opts Options, onDismiss func(), content func(T) string) *Model[T] {
	return &Model[T]{
		ctrl:     NewController(b, opts, onDismiss),
		opts:     opts,
		content:  content,
		strategy: opts.Transition.strategy(),
		mouse:    mouse.NewHandler(),
		tick:     tea.Tick,
	}
}

// Controller exposes the lifecycle controller.
func (m *Model[T]) Controller() *Controller[T] { return m.ctrl }

// Options returns the options the toast was attached with.
func (m *Model[T]) Options() Options { return m.opts }

// Visible reports whether an item is currently presented.
func (m *Model[T]) Visible() bool { return m.ctrl.Visible() }

// Active reports whether anything is on screen, including a running exit
// animation.
func (m *Model[T]) Active() bool {
	return m.ctrl.Phase() != PhaseIdle || m.anim.running()
}

// Phase returns the lifecycle phase.
func (m *Model[T]) Phase() Phase { return m.ctrl.Phase() }

// LastReason returns what caused the most recent dismissal.
func (m *Model[T]) LastReason() Reason { return m.ctrl.LastReason() }

// Init observes the binding for the first time.
func (m *Model[T]) Init() tea.Cmd {
	return m.sync(m.ctrl.Phase(), m.ctrl.Observe())
}

// Update handles lifecycle, animation, keyboard and mouse messages.
func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	m.remember()
	before := m.ctrl.Phase()
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case ShowMsg[T]:
		m.ctrl.binding.Set(msg.Item, true)

	case DismissMsg:
		m.ctrl.Dismiss(ReasonProgrammatic)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case frameMsg:
		if msg.id == m.ctrl.id {
			cmds = append(cmds, m.advance(msg))
		}

	case tea.KeyMsg:
		if m.ctrl.Visible() && key.Matches(msg, m.opts.KeyMap.Dismiss) {
			m.ctrl.Dismiss(ReasonKey)
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	}

	cmds = append(cmds, m.ctrl.Update(msg))
	return m.sync(before, cmds...)
}

// Show presents item.
func (m *Model[T]) Show(item T) tea.Cmd {
	before := m.ctrl.Phase()
	m.ctrl.binding.Set(item, true)
	m.remember()
	return m.sync(before, m.ctrl.Observe())
}

// Dismiss hides the toast as if the host had asked for it.
func (m *Model[T]) Dismiss() tea.Cmd {
	m.remember()
	before := m.ctrl.Phase()
	m.ctrl.Dismiss(ReasonProgrammatic)
	return m.sync(before)
}

// Close detaches the toast, releasing its timer. A closed toast is not
// visible and View returns the host frame unchanged; routing another
// message through Update attaches it again.
func (m *Model[T]) Close() {
	m.ctrl.Teardown()
	m.anim = animation{}
	m.hasLast = false
	m.moved = false
	m.mouse.Clear()
	m.mouse.EndDrag()
}

// remember keeps the current item so the exit animation can draw it after
// the binding has been cleared.
func (m *Model[T]) remember() {
	if item, ok := m.ctrl.Item(); ok {
		m.last = item
		m.hasLast = true
	}
}

// sync starts the animation matching a phase change and batches cmds.
// A toast that is no longer visible drops any gesture in progress, so a
// release after dismissal cannot carry over to the next appearance.
func (m *Model[T]) sync(before Phase, cmds ...tea.Cmd) tea.Cmd {
	if !m.ctrl.Visible() {
		m.mouse.EndDrag()
		m.moved = false
	}
	switch after := m.ctrl.Phase(); {
	case after == before:
	case after == PhaseVisible:
		cmds = append(cmds, m.startAnim(animAppear))
	case after == PhaseDismissing:
		cmds = append(cmds, m.startAnim(animDisappear))
	}
	return tea.Batch(cmds...)
}

func (m *Model[T]) startAnim(kind animKind) tea.Cmd {
	m.tagSeq++
	next := animation{kind: kind, frames: m.opts.Animation.frames(), tag: m.tagSeq}

	// Reversing mid-way continues from the mirrored frame.
	reversing := (kind == animAppear && m.anim.kind == animDisappear) ||
		(kind == animDisappear && m.anim.kind == animAppear)
	if reversing && m.anim.frames == next.frames {
		next.frame = next.frames - m.anim.frame
	}
	if kind == animSnapBack {
		next.fromX, next.fromY = m.ctrl.Drag().Offset()
	}

	m.anim = next
	if m.anim.frame >= m.anim.frames {
		m.finish()
		return nil
	}
	return m.nextFrame()
}

func (m *Model[T]) nextFrame() tea.Cmd {
	msg := frameMsg{id: m.ctrl.id, tag: m.anim.tag}
	return m.tick(frameInterval, func(time.Time) tea.Msg { return msg })
}

func (m *Model[T]) advance(msg frameMsg) tea.Cmd {
	if !m.anim.running() || msg.tag != m.anim.tag {
		return nil
	}
	m.anim.frame++
	if m.anim.frame >= m.anim.frames {
		m.finish()
		return nil
	}
	return m.nextFrame()
}

func (m *Model[T]) finish() {
	switch m.anim.kind {
	case animDisappear:
		m.ctrl.Settle()
		if m.ctrl.Phase() == PhaseIdle {
			m.hasLast = false
		}
	case animSnapBack:
		m.ctrl.Drag().Reset()
	}
	m.anim = animation{}
}

// progress returns how far the toast is shown, 0 hidden to 1 fully shown.
func (m *Model[T]) progress() float64 {
	curve := m.opts.Animation.Curve
	switch m.anim.kind {
	case animAppear:
		return curve.At(m.anim.linear())
	case animDisappear:
		return 1 - curve.At(m.anim.linear())
	}
	if m.ctrl.Phase() == PhaseVisible {
		return 1
	}
	return 0
}

// dragOffset returns the offset the toast is drawn at while dragged or
// settling back.
func (m *Model[T]) dragOffset() (int, int) {
	if m.anim.kind == animSnapBack {
		r := 1 - m.opts.Animation.Curve.At(m.anim.linear())
		return int(math.Round(float64(m.anim.fromX) * r)), int(math.Round(float64(m.anim.fromY) * r))
	}
	if !m.ctrl.Visible() {
		return 0, 0
	}
	return m.ctrl.Drag().Offset()
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.ctrl.Visible() {
		return nil
	}

	action := m.mouse.HandleMouse(msg)
	switch action.Type {
	case mouse.ActionClick:
		if action.Region == nil {
			return nil
		}
		switch action.Region.ID {
		case regionContent:
			if m.anim.kind == animSnapBack {
				m.anim = animation{}
				m.ctrl.Drag().Reset()
			}
			m.moved = false
			m.mouse.StartDrag(msg.X, msg.Y, regionContent)
		case regionBackdrop:
			if m.opts.Backdrop != nil {
				m.ctrl.Dismiss(ReasonBackdrop)
			}
		}

	case mouse.ActionDrag:
		if action.DragDX != 0 || action.DragDY != 0 {
			m.moved = true
		}
		if m.opts.Transition.Draggable() {
			m.ctrl.Drag().Move(action.DragDX, action.DragDY)
		}

	case mouse.ActionDragEnd:
		return m.endGesture(action)
	}
	return nil
}

// endGesture resolves a press on the content into a tap or a drag.
func (m *Model[T]) endGesture(action mouse.Action) tea.Cmd {
	moved := m.moved
	m.moved = false

	if !m.opts.Transition.Draggable() {
		onContent := action.Region != nil && action.Region.ID == regionContent
		if onContent && m.opts.TapDismisses() {
			m.ctrl.Dismiss(ReasonTap)
		}
		return nil
	}

	if !moved {
		if m.opts.TapDismisses() {
			m.ctrl.Dismiss(ReasonTap)
		}
		return nil
	}

	m.ctrl.Drag().Move(action.DragDX, action.DragDY)
	if m.ctrl.Drag().End() {
		m.ctrl.Dismiss(ReasonDrag)
		return nil
	}
	return m.startAnim(animSnapBack)
}

// View composites the toast over base, a frame of width×height cells. Zero
// dimensions fall back to the last WindowSizeMsg, then to the size of base.
// View records the hit regions used by the next mouse message.
func (m *Model[T]) View(base string, width, height int) string {
	m.mouse.Clear()

	if width <= 0 || height <= 0 {
		width, height = m.width, m.height
	}
	if width <= 0 || height <= 0 {
		width, height = lipgloss.Size(base)
	}

	item, present := m.ctrl.Item()
	visible := present && m.ctrl.Visible()
	switch {
	case visible:
	case m.anim.kind == animDisappear && m.hasLast:
		item = m.last
	default:
		return base
	}

	block := m.content(item)
	p := m.progress()
	frame, fx, fy := m.strategy.frame(block, p, m.opts.Alignment)

	bw, bh := lipgloss.Size(block)
	x, y := m.opts.Alignment.place(bw, bh, width, height, m.opts.Margin)
	dx, dy := m.dragOffset()
	x, y = x+fx+dx, y+fy+dy

	canvas := base
	if m.opts.Backdrop != nil && p > 0 {
		canvas = dimBackdrop(base, width, height, m.opts.Backdrop.Color)
		if visible {
			m.mouse.HitMap.AddRect(regionBackdrop, 0, 0, width, height, nil)
		}
	}
	if visible {
		fw, fh := lipgloss.Size(frame)
		m.mouse.HitMap.AddRect(regionContent, x, y, fw, fh, nil)
	}

	return overlayAt(canvas, frame, x, y, width, height)
}
