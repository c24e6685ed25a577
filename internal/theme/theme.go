package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// ListTitleStyle renders a list's title.
var ListTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue)

// ItemStyle is the base style for an item line.
var ItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// LocatorStyle renders entity locators.
var LocatorStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// SuccessStyle confirms a completed mutation.
var SuccessStyle = lipgloss.NewStyle().
	Foreground(ColorGreen)

// ErrorStyle reports a failed command.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorRed).
	Bold(true)

// DetailPanelStyle wraps a single entity's details.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// DueStyle colors a due date: red when overdue, yellow when due within
// a day, gray otherwise.
func DueStyle(overdue, dueSoon bool) lipgloss.Style {
	switch {
	case overdue:
		return lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	case dueSoon:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	default:
		return lipgloss.NewStyle().Foreground(ColorGray)
	}
}
