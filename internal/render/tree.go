// Package render draws a roadmap step tree as indented, status-styled text.
// It performs no I/O and never fails: malformed types and statuses degrade
// to fallback presentation.
package render

import (
	"fmt"
	"strings"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

// EmptyMessage is printed when a roadmap has no steps at all.
const EmptyMessage = "No steps in this roadmap yet."

// indentWidth is the fixed per-level indent increment, uniform across node
// types and statuses.
const indentWidth = 2

// Markers for the collapse affordance on container nodes.
const (
	markerExpanded  = "▾"
	markerCollapsed = "▸"
	markerLeaf      = " "
)

// Line is one visible node in the flattened tree view.
type Line struct {
	Step        *roadmap.Step
	Depth       int
	Collapsible bool
	Expanded    bool
}

// Collapsible reports whether a step gets a collapse affordance: it must
// have at least one child and be a container type (module or section).
// Other types always show their children flattened.
func Collapsible(step *roadmap.Step) bool {
	return len(step.Children) > 0 && step.Type.IsContainer()
}

// Renderer walks a step forest and produces the visual tree. Expand state is
// keyed by step ID so it survives re-renders of sibling lists.
type Renderer struct {
	expanded map[string]bool
	plain    bool // disable styling (tests, piped output)
}

// NewRenderer creates a renderer seeded with the initial expand policy:
// collapsible nodes start expanded only at the root level (depth 0),
// everything deeper starts collapsed. The policy is applied once; afterwards
// the expand map is the only authority.
func NewRenderer(steps []roadmap.Step) *Renderer {
	return &Renderer{expanded: DefaultExpanded(steps)}
}

// NewPlainRenderer is NewRenderer without ANSI styling.
func NewPlainRenderer(steps []roadmap.Step) *Renderer {
	r := NewRenderer(steps)
	r.plain = true
	return r
}

// DefaultExpanded computes the initial expand state for every collapsible
// node in the forest.
func DefaultExpanded(steps []roadmap.Step) map[string]bool {
	expanded := make(map[string]bool)
	var walk func(steps []roadmap.Step, depth int)
	walk = func(steps []roadmap.Step, depth int) {
		for i := range steps {
			step := &steps[i]
			if Collapsible(step) {
				expanded[step.ID] = depth < 1
			}
			walk(step.Children, depth+1)
		}
	}
	walk(steps, 0)
	return expanded
}

// IsExpanded reports whether a collapsible node currently shows its children.
func (r *Renderer) IsExpanded(id string) bool {
	return r.expanded[id]
}

// Toggle flips the expand state of one node. Toggling never affects sibling
// or ancestor state.
func (r *Renderer) Toggle(id string) {
	r.expanded[id] = !r.expanded[id]
}

// ExpandAll opens every collapsible node in the forest.
func (r *Renderer) ExpandAll(steps []roadmap.Step) {
	var walk func(steps []roadmap.Step)
	walk = func(steps []roadmap.Step) {
		for i := range steps {
			if Collapsible(&steps[i]) {
				r.expanded[steps[i].ID] = true
			}
			walk(steps[i].Children)
		}
	}
	walk(steps)
}

// Lines flattens the forest into the currently visible nodes, in input
// order. Children of a collapsed container are omitted; every other node's
// children follow it directly.
func (r *Renderer) Lines(steps []roadmap.Step) []Line {
	var lines []Line
	var walk func(steps []roadmap.Step, depth int)
	walk = func(steps []roadmap.Step, depth int) {
		for i := range steps {
			step := &steps[i]
			collapsible := Collapsible(step)
			line := Line{
				Step:        step,
				Depth:       depth,
				Collapsible: collapsible,
				Expanded:    r.expanded[step.ID],
			}
			lines = append(lines, line)

			if len(step.Children) > 0 && (!collapsible || line.Expanded) {
				walk(step.Children, depth+1)
			}
		}
	}
	walk(steps, 0)
	return lines
}

// Render produces the tree as text, one line per visible node, or the empty
// state message when there are no steps.
func (r *Renderer) Render(steps []roadmap.Step) string {
	if len(steps) == 0 {
		return EmptyMessage + "\n"
	}

	var b strings.Builder
	for _, line := range r.Lines(steps) {
		b.WriteString(r.renderLine(line, false))
		b.WriteByte('\n')
	}
	return b.String()
}

// renderLine formats a single node. Selection is only used by the TUI.
func (r *Renderer) renderLine(line Line, selected bool) string {
	step := line.Step

	marker := markerLeaf
	if line.Collapsible {
		marker = markerCollapsed
		if line.Expanded {
			marker = markerExpanded
		}
	}

	text := step.Title
	if step.EstimatedDuration != "" {
		text += fmt.Sprintf(" (%s)", step.EstimatedDuration)
	}

	if !r.plain {
		style := StatusStyle(step.Status)
		if selected {
			style = style.Reverse(true)
		}
		text = style.Render(text)
	}

	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", line.Depth*indentWidth),
		marker,
		TypeIcon(step.Type),
		StatusIcon(step.Status),
		text,
	)
}

// RenderLine formats one flattened line, highlighting it when selected.
func (r *Renderer) RenderLine(line Line, selected bool) string {
	return r.renderLine(line, selected)
}
