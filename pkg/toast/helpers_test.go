package toast

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeTicker records scheduled timers and frames and delivers their
// messages immediately when the returned command runs.
type fakeTicker struct {
	timers []time.Duration
	frames int
}

func (f *fakeTicker) schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	msg := fn(time.Time{})
	switch msg.(type) {
	case timeoutMsg:
		f.timers = append(f.timers, d)
	case frameMsg:
		f.frames++
	}
	return func() tea.Msg { return msg }
}

func testController[T any](b Binding[T], opts Options, onDismiss func()) (*Controller[T], *fakeTicker) {
	c := NewController(b, opts, onDismiss)
	ft := &fakeTicker{}
	c.tick = ft.schedule
	return c, ft
}

func testModel[T any](b Binding[T], opts Options, onDismiss func(), content func(T) string) (*Model[T], *fakeTicker) {
	m := Attach(b, opts, onDismiss, content)
	ft := &fakeTicker{}
	m.tick = ft.schedule
	m.ctrl.tick = ft.schedule
	return m, ft
}

// run executes cmd and flattens batches into their messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// pump feeds animation frames back into m until none remain and returns
// every other message produced along the way.
func pump[T any](t *testing.T, m *Model[T], cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var other []tea.Msg
	queue := run(cmd)
	for i := 0; len(queue) > 0; i++ {
		if i > 1000 {
			t.Fatal("animation did not settle")
		}
		msg := queue[0]
		queue = queue[1:]
		if _, ok := msg.(frameMsg); ok {
			queue = append(queue, run(m.Update(msg))...)
			continue
		}
		other = append(other, msg)
	}
	return other
}

func timeouts(msgs []tea.Msg) []tea.Msg {
	var out []tea.Msg
	for _, msg := range msgs {
		if _, ok := msg.(timeoutMsg); ok {
			out = append(out, msg)
		}
	}
	return out
}

func counter() (*int, func()) {
	n := 0
	return &n, func() { n++ }
}

func noAnimation(opts ...Option) Options {
	return NewOptions(append([]Option{WithAnimation(Animation{})}, opts...)...)
}
