package roadmap

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Lifecycle events accepted by the step state machine.
const (
	EventUnlock   = "unlock"
	EventLock     = "lock"
	EventStart    = "start"
	EventStop     = "stop"
	EventComplete = "complete"
	EventFail     = "fail"
	EventRetry    = "retry"
	EventReset    = "reset"
)

// StepContext carries machine context data.
type StepContext struct {
	StepID string
	Guard  func(stepID string, event string) bool
}

// StepStateMachine enforces the valid status transitions for a single step.
// Rendering never consults the machine; it only gates local state changes.
type StepStateMachine struct {
	interpreter *statekit.Interpreter[StepContext]
}

// NewStepStateMachine builds a machine starting at the given status. The
// guard, if provided, can veto "start" and "unlock" (e.g. while a parent
// module is still locked).
func NewStepStateMachine(initial StepStatus, stepID string, guard func(string, string) bool) (*StepStateMachine, error) {
	if guard == nil {
		guard = func(string, string) bool { return true }
	}
	if !initial.IsKnown() {
		// Unrecognized authored statuses behave as unlocked for transitions;
		// presentation keeps its own fallback.
		initial = StatusUnlocked
	}

	builder := statekit.NewMachine[StepContext]("step-machine").
		WithInitial(statekit.StateID(initial)).
		WithContext(StepContext{
			StepID: stepID,
			Guard:  guard,
		}).
		WithGuard("accessGuard", func(ctx StepContext, e statekit.Event) bool {
			return ctx.Guard(ctx.StepID, string(e.Type))
		})

	builder.State(statekit.StateID(StatusLocked)).
		On(EventUnlock).Target(statekit.StateID(StatusUnlocked)).Guard("accessGuard").
		Done()

	builder.State(statekit.StateID(StatusUnlocked)).
		On(EventStart).Target(statekit.StateID(StatusInProgress)).Guard("accessGuard").
		On(EventLock).Target(statekit.StateID(StatusLocked)).
		Done()

	builder.State(statekit.StateID(StatusInProgress)).
		On(EventComplete).Target(statekit.StateID(StatusCompleted)).
		On(EventFail).Target(statekit.StateID(StatusFailed)).
		On(EventStop).Target(statekit.StateID(StatusUnlocked)).
		Done()

	builder.State(statekit.StateID(StatusCompleted)).
		On(EventReset).Target(statekit.StateID(StatusUnlocked)).
		Done()

	builder.State(statekit.StateID(StatusFailed)).
		On(EventRetry).Target(statekit.StateID(StatusInProgress)).Guard("accessGuard").
		On(EventReset).Target(statekit.StateID(StatusUnlocked)).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build step state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &StepStateMachine{interpreter: interpreter}, nil
}

// Transition attempts to apply an event. It returns an error when the event
// is not valid for the current status or a guard refused it.
func (sm *StepStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	if before != after {
		return nil
	}
	return fmt.Errorf("cannot %q a step that is %s", event, before)
}

// Current returns the machine's current status.
func (sm *StepStateMachine) Current() StepStatus {
	return StepStatus(sm.interpreter.State().Value)
}
