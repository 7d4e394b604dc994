package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
	colorWhite     = lipgloss.Color("231")
	colorMuted     = lipgloss.Color("236")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	searchStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	searchFocusedStyle = searchStyle.
				BorderForeground(colorHighlight)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1).
			Width(44)

	cardSelectedStyle = cardStyle.
				BorderForeground(colorHighlight)

	websiteStyle = lipgloss.NewStyle().Bold(true)

	fieldStyle = lipgloss.NewStyle().
			Background(colorMuted).
			Padding(0, 1)

	emptyTitleStyle = lipgloss.NewStyle().Bold(true)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorHighlight).
			Padding(1, 2).
			Width(60)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.Color("237")).
			Padding(0, 3).
			MarginRight(1)

	activeButtonStyle = buttonStyle.
				Background(colorHighlight)

	focusedInputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSuccess).
			Padding(0, 1)

	toastDestructiveStyle = toastStyle.
				BorderForeground(colorError).
				Foreground(colorError)
)
