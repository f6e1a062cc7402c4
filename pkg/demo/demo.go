// Package demo is an interactive playground hosting two toasts: a banner
// bound to a bool and a notice bound to an optional message.
package demo

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/toast/pkg/toast"
)

const historySize = 6

// refreshMsg makes a toast re-observe its binding without delivering input.
type refreshMsg struct{}

// layer is a toast drawn over the host.
type layer interface {
	Update(tea.Msg) tea.Cmd
	Visible() bool
}

// Model is the playground's Bubble Tea model.
type Model struct {
	keys       KeyMap
	help       help.Model
	base       toast.Options
	toastWidth int
	log        *slog.Logger

	width, height int

	bannerShown bool
	banner      *toast.Model[toast.Unit]

	current *toast.Message
	notice  *toast.Model[toast.Message]

	transitions *picker
	alignments  *picker
	focus       int

	shown   int
	history []string
}

// New creates a playground. opts seeds the notice toast; the pickers change
// its transition and alignment.
func New(opts toast.Options, toastWidth int) *Model {
	m := &Model{
		keys:        DefaultKeyMap(),
		help:        help.New(),
		base:        opts,
		toastWidth:  toastWidth,
		log:         slog.Default().With("component", "demo"),
		transitions: newPicker("Transition", toast.TransitionNames(), opts.Transition.String(), 4),
		alignments:  newPicker("Alignment", toast.AlignmentNames(), opts.Alignment.String(), 5),
	}

	bannerOpts := opts
	bannerOpts.Alignment = toast.AlignBottom
	bannerOpts.Transition = toast.TransitionFade
	bannerOpts.Backdrop = nil
	m.banner = toast.AttachBool(&m.bannerShown, bannerOpts, m.onBannerDismiss, m.bannerView)

	m.attachNotice()
	return m
}

// attachNotice binds a fresh notice toast using the picked variant.
func (m *Model) attachNotice() {
	opts := m.base
	if t, err := toast.ParseTransition(m.transitions.Selected()); err == nil {
		opts.Transition = t
	}
	if a, err := toast.ParseAlignment(m.alignments.Selected()); err == nil {
		opts.Alignment = a
	}
	if m.notice != nil {
		m.notice.Close()
	}
	m.current = nil
	m.notice = toast.AttachPointer(&m.current, opts, m.onNoticeDismiss, toast.MessageView(m.toastWidth))
}

func (m *Model) onNoticeDismiss() {
	m.record(fmt.Sprintf("notice #%d dismissed: %s", m.shown, m.notice.LastReason()))
}

func (m *Model) onBannerDismiss() {
	m.record("banner dismissed: " + m.banner.LastReason().String())
}

func (m *Model) record(line string) {
	m.log.Debug(line)
	m.history = append(m.history, line)
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}
}

// History returns recent dismissals, oldest first.
func (m *Model) History() []string { return m.history }

// Notice returns the message toast.
func (m *Model) Notice() *toast.Model[toast.Message] { return m.notice }

// Banner returns the boolean toast.
func (m *Model) Banner() *toast.Model[toast.Unit] { return m.banner }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.banner.Init(), m.notice.Init())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	input := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd, handled, quit := m.handleKey(msg)
		if quit {
			m.banner.Close()
			m.notice.Close()
			return m, tea.Quit
		}
		if handled {
			cmds = append(cmds, cmd)
			cmds = append(cmds, m.broadcast(refreshMsg{}, false)...)
			return m, tea.Batch(cmds...)
		}
		input = true

	case tea.MouseMsg:
		input = true
	}

	cmds = append(cmds, m.broadcast(msg, input)...)
	return m, tea.Batch(cmds...)
}

// broadcast delivers msg to both toasts. Input only reaches the topmost
// visible toast; the other one just re-observes its binding.
func (m *Model) broadcast(msg tea.Msg, input bool) []tea.Cmd {
	target := m.topmost()
	var cmds []tea.Cmd
	for _, l := range []layer{m.notice, m.banner} {
		if input && l != target {
			cmds = append(cmds, l.Update(refreshMsg{}))
			continue
		}
		cmds = append(cmds, l.Update(msg))
	}
	return cmds
}

func (m *Model) topmost() layer {
	switch {
	case m.notice.Visible():
		return m.notice
	case m.banner.Visible():
		return m.banner
	}
	return nil
}

// handleKey applies playground keys. It reports whether the key was used
// and whether the program should quit.
func (m *Model) handleKey(msg tea.KeyMsg) (cmd tea.Cmd, handled, quit bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Info):
		return m.showNotice(toast.LevelInfo), true, false
	case key.Matches(msg, m.keys.Success):
		return m.showNotice(toast.LevelSuccess), true, false
	case key.Matches(msg, m.keys.Warning):
		return m.showNotice(toast.LevelWarning), true, false
	case key.Matches(msg, m.keys.Error):
		return m.showNotice(toast.LevelError), true, false
	case key.Matches(msg, m.keys.Banner):
		// The host flips the bool directly; the toast notices on refresh.
		m.bannerShown = !m.bannerShown
	case key.Matches(msg, m.keys.Dismiss):
		if m.notice.Visible() {
			return m.notice.Dismiss(), true, false
		}
		return m.banner.Dismiss(), true, false
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % 2
	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Home, m.keys.End):
		p := m.transitions
		if m.focus == 1 {
			p = m.alignments
		}
		if p.Update(msg, m.keys) {
			m.attachNotice()
			m.record(fmt.Sprintf("notice set to %s at %s", m.transitions.Selected(), m.alignments.Selected()))
			return m.notice.Init(), true, false
		}
	default:
		return nil, false, false
	}
	return nil, true, false
}

func (m *Model) showNotice(level toast.Level) tea.Cmd {
	m.shown++
	return m.notice.Show(sampleMessage(level, m.shown))
}

var samples = map[toast.Level][]toast.Message{
	toast.LevelInfo: {
		toast.InfoMessage("3 new comments on your pull request"),
		{Level: toast.LevelInfo, Title: "Tip", Body: "Drag a toast toward its edge to **dismiss** it", Markdown: true},
	},
	toast.LevelSuccess: {
		toast.SuccessMessage("Saved"),
		toast.SuccessMessage("Deploy finished in 42s").WithTitle("Production"),
	},
	toast.LevelWarning: {
		toast.WarningMessage("Disk usage above 80%"),
		toast.WarningMessage("Token expires in 5 minutes").WithTitle("Session"),
	},
	toast.LevelError: {
		toast.ErrorMessage("connection refused").WithTitle("Sync failed"),
		toast.ErrorMessage("Build #118 failed"),
	},
}

func sampleMessage(level toast.Level, n int) toast.Message {
	list := samples[level]
	return list[n%len(list)]
}

var bannerStyle = lipgloss.NewStyle().
	Foreground(toast.Text).
	Background(toast.Surface).
	Padding(0, 2)

func (m *Model) bannerView() string {
	return bannerStyle.Render("● connected · tap or press d to hide")
}

func (m *Model) View() string {
	out := m.banner.View(m.hostView(), m.width, m.height)
	return m.notice.View(out, m.width, m.height)
}

func (m *Model) hostView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("toast playground") + "\n")
	sb.WriteString(mutedStyle.Render("Show a notice, then tap it, drag it, press esc or wait.") + "\n\n")

	pickers := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(20).Render(m.transitions.View(m.focus == 0)),
		m.alignments.View(m.focus == 1),
	)
	sb.WriteString(pickers + "\n\n")

	sb.WriteString(titleStyle.Render("History") + "\n")
	if len(m.history) == 0 {
		sb.WriteString(mutedStyle.Render("nothing dismissed yet") + "\n")
	}
	for _, line := range m.history {
		sb.WriteString("  " + line + "\n")
	}
	sb.WriteString("\n" + m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
