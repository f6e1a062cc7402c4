package toast

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Level is the severity of a message toast.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// ParseLevel converts a level name. The empty string is LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case "", LevelInfo:
		return LevelInfo, nil
	case LevelSuccess:
		return LevelSuccess, nil
	case LevelWarning, "warn":
		return LevelWarning, nil
	case LevelError:
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown level %q (want info, success, warning or error)", s)
}

// Color returns the accent colour for the level.
func (l Level) Color() lipgloss.Color {
	switch l {
	case LevelSuccess:
		return Success
	case LevelWarning:
		return Warning
	case LevelError:
		return Error
	default:
		return Info
	}
}

func (l Level) icon() string {
	switch l {
	case LevelSuccess:
		return "✓"
	case LevelWarning:
		return "!"
	case LevelError:
		return "✗"
	default:
		return "i"
	}
}

// Message is the usual toast payload.
type Message struct {
	Level Level
	Title string
	Body  string

	// Markdown renders Body with glamour.
	Markdown bool
}

// InfoMessage returns an info-level message.
func InfoMessage(body string) Message { return Message{Level: LevelInfo, Body: body} }

// SuccessMessage returns a success-level message.
func SuccessMessage(body string) Message { return Message{Level: LevelSuccess, Body: body} }

// WarningMessage returns a warning-level message.
func WarningMessage(body string) Message { return Message{Level: LevelWarning, Body: body} }

// ErrorMessage returns an error-level message.
func ErrorMessage(body string) Message { return Message{Level: LevelError, Body: body} }

// WithTitle returns a copy of m with a title.
func (m Message) WithTitle(title string) Message {
	m.Title = title
	return m
}

// Render draws the message in a bordered box at most width cells wide.
// A width of zero or less sizes the box to its content.
func (m Message) Render(width int) string {
	accent := m.Level.Color()
	inner := width - Box.GetHorizontalFrameSize()

	body := m.Body
	if m.Markdown {
		body = renderMarkdown(body, inner)
	}

	var sb strings.Builder
	head := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(m.Level.icon())
	if m.Title != "" {
		head += " " + TitleStyle.Render(m.Title)
	}
	sb.WriteString(head)
	if body != "" {
		if m.Title != "" {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(BodyStyle.Render(body))
	}

	style := Box.BorderForeground(accent)
	if inner > 0 {
		style = style.Width(min(lipgloss.Width(sb.String()), inner) + Box.GetHorizontalPadding())
	}
	return style.Render(sb.String())
}

// MessageView returns a content function rendering messages at most width
// cells wide, for use with Attach.
func MessageView(width int) func(Message) string {
	return func(m Message) string {
		return m.Render(width)
	}
}

func renderMarkdown(src string, width int) string {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("dark")}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		slog.Debug("markdown renderer unavailable", "err", err)
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		slog.Debug("markdown render failed", "err", err)
		return src
	}
	return strings.Trim(out, "\n")
}
