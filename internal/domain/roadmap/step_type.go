package roadmap

import "fmt"

// StepType classifies what a roadmap step represents. The type only drives
// presentation (icon, collapse affordance), never behavior.
type StepType string

const (
	TypeLesson           StepType = "lesson"
	TypeModule           StepType = "module"
	TypeQuiz             StepType = "quiz"
	TypeAssignment       StepType = "assignment"
	TypeSection          StepType = "section"
	TypeExternalResource StepType = "external_resource"
)

// knownTypes lists the declared variants. Values outside this set are kept
// verbatim in the tree and fall back to generic presentation.
var knownTypes = map[StepType]bool{
	TypeLesson:           true,
	TypeModule:           true,
	TypeQuiz:             true,
	TypeAssignment:       true,
	TypeSection:          true,
	TypeExternalResource: true,
}

// IsKnown reports whether the type is one of the declared variants.
func (t StepType) IsKnown() bool {
	return knownTypes[t]
}

// IsContainer reports whether the type is a container-like step. Only
// container types hide their children behind a collapse affordance.
func (t StepType) IsContainer() bool {
	return t == TypeModule || t == TypeSection
}

// ParseStepType converts a string into a StepType, rejecting unknown values.
// Used for CLI flags; loaded roadmaps keep unknown values as-is.
func ParseStepType(s string) (StepType, error) {
	t := StepType(s)
	if !t.IsKnown() {
		return "", fmt.Errorf("invalid step type: %q (valid: lesson, module, quiz, assignment, section, external_resource)", s)
	}
	return t, nil
}
