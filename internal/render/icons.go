package render

import "github.com/skilltrail/skilltrail/internal/domain/roadmap"

// Display glyphs. Both lookups are total: any value outside the declared
// enum sets maps to a defined fallback, never an error.
const (
	IconLesson     = "📖"
	IconModule     = "📁"
	IconChecklist  = "📋"
	IconSection    = "📄"
	IconLink       = "🔗"
	IconUnknown    = "❓"
	IconLocked     = "🔒"
	IconUnlocked   = "○"
	IconInProgress = "◐"
	IconCompleted  = "●"
	IconFailed     = "✗"
	IconNeutral    = "◌"
)

var typeIcons = map[roadmap.StepType]string{
	roadmap.TypeLesson:           IconLesson,
	roadmap.TypeModule:           IconModule,
	roadmap.TypeQuiz:             IconChecklist,
	roadmap.TypeAssignment:       IconChecklist,
	roadmap.TypeSection:          IconSection,
	roadmap.TypeExternalResource: IconLink,
}

var statusIcons = map[roadmap.StepStatus]string{
	roadmap.StatusLocked:     IconLocked,
	roadmap.StatusUnlocked:   IconUnlocked,
	roadmap.StatusInProgress: IconInProgress,
	roadmap.StatusCompleted:  IconCompleted,
	roadmap.StatusFailed:     IconFailed,
}

// TypeIcon returns the display icon for a step type.
func TypeIcon(t roadmap.StepType) string {
	if icon, ok := typeIcons[t]; ok {
		return icon
	}
	return IconUnknown
}

// StatusIcon returns the display icon for a step status.
func StatusIcon(s roadmap.StepStatus) string {
	if icon, ok := statusIcons[s]; ok {
		return icon
	}
	return IconNeutral
}
