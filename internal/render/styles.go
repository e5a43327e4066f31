package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

// Styles
var (
	styleLocked     = lipgloss.NewStyle().Faint(true)
	styleUnlocked   = lipgloss.NewStyle()
	styleInProgress = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	styleCompleted  = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	styleFailed     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleNeutral    = lipgloss.NewStyle().Faint(true)

	// TitleStyle renders the roadmap header banner.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(1).
			PaddingRight(1)

	// MetaStyle renders secondary text such as durations.
	MetaStyle = lipgloss.NewStyle().Faint(true)
)

var statusStyles = map[roadmap.StepStatus]lipgloss.Style{
	roadmap.StatusLocked:     styleLocked,
	roadmap.StatusUnlocked:   styleUnlocked,
	roadmap.StatusInProgress: styleInProgress,
	roadmap.StatusCompleted:  styleCompleted,
	roadmap.StatusFailed:     styleFailed,
}

// StatusStyle returns the text style for a step status. Unrecognized values
// get the muted neutral style.
func StatusStyle(s roadmap.StepStatus) lipgloss.Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return styleNeutral
}
