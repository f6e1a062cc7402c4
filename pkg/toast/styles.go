package toast

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary = lipgloss.Color("212")
	Success = lipgloss.Color("42")
	Error   = lipgloss.Color("196")
	Warning = lipgloss.Color("214")
	Info    = lipgloss.Color("45")
	Muted   = lipgloss.Color("241")
	Surface = lipgloss.Color("235")
	Text    = lipgloss.Color("252")
)

// Box is the frame around message toasts. The border colour is set per level.
var Box = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Background(Surface).
	Foreground(Text).
	Padding(0, 1)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().Bold(true)
	BodyStyle  = lipgloss.NewStyle()
	HintStyle  = lipgloss.NewStyle().Foreground(Muted)
)
