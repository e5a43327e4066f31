package roadmap

import "fmt"

// StepStatus is a step's progress state. It controls presentation and which
// lifecycle transitions are allowed; it never gates reading the tree.
type StepStatus string

const (
	StatusLocked     StepStatus = "locked"
	StatusUnlocked   StepStatus = "unlocked"
	StatusInProgress StepStatus = "in_progress"
	StatusCompleted  StepStatus = "completed"
	StatusFailed     StepStatus = "failed"
)

var knownStatuses = map[StepStatus]bool{
	StatusLocked:     true,
	StatusUnlocked:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusFailed:     true,
}

// IsKnown reports whether the status is one of the declared variants.
func (s StepStatus) IsKnown() bool {
	return knownStatuses[s]
}

// IsTerminal reports whether the step has reached an end state.
func (s StepStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// IsComplete reports whether the step counts toward overall progress.
func (s StepStatus) IsComplete() bool {
	return s == StatusCompleted
}

// IsActive reports whether the step is being worked on.
func (s StepStatus) IsActive() bool {
	return s == StatusInProgress
}

// ParseStepStatus converts a string into a StepStatus, rejecting unknown
// values. Used for CLI flags; loaded roadmaps keep unknown values as-is.
func ParseStepStatus(s string) (StepStatus, error) {
	st := StepStatus(s)
	if !st.IsKnown() {
		return "", fmt.Errorf("invalid step status: %q (valid: locked, unlocked, in_progress, completed, failed)", s)
	}
	return st, nil
}
