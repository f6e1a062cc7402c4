package demo

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// picker is a scrollable single-choice list.
type picker struct {
	title      string
	items      []string
	selected   int
	maxVisible int
	offset     int
}

func newPicker(title string, items []string, current string, maxVisible int) *picker {
	p := &picker{title: title, items: items, maxVisible: max(maxVisible, 1)}
	for i, it := range items {
		if it == current {
			p.selected = i
		}
	}
	return p
}

// Selected returns the chosen item, or "" for an empty list.
func (p *picker) Selected() string {
	if p.selected < 0 || p.selected >= len(p.items) {
		return ""
	}
	return p.items[p.selected]
}

// Update moves the selection and reports whether it changed.
func (p *picker) Update(msg tea.KeyMsg, keys KeyMap) bool {
	if len(p.items) == 0 {
		return false
	}
	prev := p.selected
	switch {
	case key.Matches(msg, keys.Up):
		if p.selected > 0 {
			p.selected--
		}
	case key.Matches(msg, keys.Down):
		if p.selected < len(p.items)-1 {
			p.selected++
		}
	case key.Matches(msg, keys.Home):
		p.selected = 0
	case key.Matches(msg, keys.End):
		p.selected = len(p.items) - 1
	}
	return p.selected != prev
}

func (p *picker) View(focused bool) string {
	title := titleStyle.Render(p.title)
	if !focused {
		title = mutedStyle.Render(p.title)
	}
	if len(p.items) == 0 {
		return title + "\n" + mutedStyle.Render("(no items)")
	}

	visible := min(p.maxVisible, len(p.items))

	// Keep the selection on screen.
	if p.selected < p.offset {
		p.offset = p.selected
	} else if p.selected >= p.offset+visible {
		p.offset = p.selected - visible + 1
	}
	p.offset = max(0, min(p.offset, len(p.items)-visible))

	var sb strings.Builder
	sb.WriteString(title)
	if p.offset > 0 {
		sb.WriteString("\n" + mutedStyle.Render("↑ more above"))
	}
	for i := p.offset; i < p.offset+visible; i++ {
		style := itemStyle
		cursor := "  "
		if i == p.selected {
			cursor = cursorStyle.Render("> ")
			style = selectedStyle
			if focused {
				style = focusedStyle
			}
		}
		sb.WriteString("\n" + cursor + style.Render(p.items[i]))
	}
	if p.offset+visible < len(p.items) {
		sb.WriteString("\n" + mutedStyle.Render("↓ more below"))
	}
	return sb.String()
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("255"))
	focusedStyle  = selectedStyle.Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
)
