package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/toast/internal/config"
	"github.com/marcus/toast/pkg/toast"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNothingToShow = errors.New("nothing to show: pass a message or pipe one on stdin")

var showFlags struct {
	level         string
	title         string
	markdown      bool
	hideAfter     time.Duration
	align         string
	transition    string
	curve         string
	animation     time.Duration
	backdrop      bool
	noTapDismiss  bool
	dragThreshold int
	width         int
}

var showCmd = &cobra.Command{
	Use:   "show [message]",
	Short: "Display a toast and exit when it is dismissed",
	Long: `Display a single toast over the terminal.

The toast hides after --hide-after, when tapped, when the backdrop is clicked,
when dragged past the threshold or when esc is pressed. If stdout is not a
terminal the rendered toast is printed once instead.`,
	Example: `  toast show "Build finished"
  toast show --level error --title "Deploy failed" "rollback in progress"
  echo "**done**" | toast show --markdown --transition scale`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		applyShowFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		body := strings.Join(args, " ")
		if body == "" && !term.IsTerminal(int(os.Stdin.Fd())) {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			body = strings.TrimSpace(string(data))
		}
		if body == "" {
			return errNothingToShow
		}

		level, err := toast.ParseLevel(cfg.Level)
		if err != nil {
			return err
		}
		msg := toast.Message{Level: level, Title: showFlags.title, Body: body, Markdown: showFlags.markdown}

		width := cfg.Width
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(cmd.OutOrStdout(), msg.Render(width))
			return nil
		}
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 4 {
			width = min(width, w-2)
		}

		opts, err := cfg.Options()
		if err != nil {
			return err
		}

		slog.Debug("showing toast", "level", level, "hide_after", opts.HideAfter, "transition", opts.Transition)
		p := tea.NewProgram(newShowModel(msg, opts, width), tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run toast: %w", err)
		}
		return nil
	},
}

func init() {
	f := showCmd.Flags()
	f.Var(newEnumFlag(&showFlags.level, []string{"info", "success", "warning", "error"}), "level", "toast level (info, success, warning, error)")
	f.StringVar(&showFlags.title, "title", "", "bold title line above the message")
	f.BoolVar(&showFlags.markdown, "markdown", false, "render the message as Markdown")
	f.DurationVar(&showFlags.hideAfter, "hide-after", 0, "auto-hide delay, 0 keeps the toast until dismissed")
	f.Var(newEnumFlag(&showFlags.align, toast.AlignmentNames()), "align", "where the toast is anchored")
	f.Var(newEnumFlag(&showFlags.transition, toast.TransitionNames()), "transition", "slide, scale, skew or fade")
	f.Var(newEnumFlag(&showFlags.curve, []string{"linear", "ease-in", "ease-out", "ease-in-out"}), "curve", "animation easing curve")
	f.DurationVar(&showFlags.animation, "animation", 0, "animation duration, 0 disables animation")
	f.BoolVar(&showFlags.backdrop, "backdrop", false, "dim the screen and dismiss on a backdrop click")
	f.BoolVar(&showFlags.noTapDismiss, "no-tap-dismiss", false, "ignore taps on the toast itself")
	f.IntVar(&showFlags.dragThreshold, "drag-threshold", 0, "rows the toast must be dragged to dismiss it")
	f.IntVar(&showFlags.width, "width", 0, "maximum toast width in cells")

	rootCmd.AddCommand(showCmd)
}

// applyShowFlags overrides cfg with the flags the user actually set.
func applyShowFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("level") {
		cfg.Level = showFlags.level
	}
	if f.Changed("hide-after") {
		cfg.HideAfter = showFlags.hideAfter
	}
	if f.Changed("align") {
		cfg.Alignment = showFlags.align
	}
	if f.Changed("transition") {
		cfg.Transition = showFlags.transition
	}
	if f.Changed("curve") {
		cfg.Curve = showFlags.curve
	}
	if f.Changed("animation") {
		cfg.AnimationDuration = showFlags.animation
	}
	if f.Changed("backdrop") {
		cfg.Backdrop = showFlags.backdrop
	}
	if f.Changed("no-tap-dismiss") {
		cfg.DismissOnTap = !showFlags.noTapDismiss
	}
	if f.Changed("drag-threshold") {
		cfg.DragThreshold = showFlags.dragThreshold
	}
	if f.Changed("width") {
		cfg.Width = showFlags.width
	}
}

// showModel hosts a single toast and quits once it has gone.
type showModel struct {
	msg   *toast.Message
	toast *toast.Model[toast.Message]
}

func newShowModel(msg toast.Message, opts toast.Options, width int) *showModel {
	m := &showModel{msg: &msg}
	m.toast = toast.AttachPointer(&m.msg, opts, nil, toast.MessageView(width))
	return m
}

func (m *showModel) Init() tea.Cmd {
	return m.toast.Init()
}

func (m *showModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c", "q":
			m.toast.Close()
			return m, tea.Quit
		}
	}

	cmd := m.toast.Update(msg)
	if !m.toast.Active() {
		slog.Debug("toast finished", "reason", m.toast.LastReason())
		return m, tea.Quit
	}
	return m, cmd
}

func (m *showModel) View() string {
	return m.toast.View("", 0, 0)
}
