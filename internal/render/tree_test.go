package render

import (
	"strings"
	"testing"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

func sampleSteps() []roadmap.Step {
	return []roadmap.Step{
		{
			ID:     "m1",
			Title:  "Module One",
			Type:   roadmap.TypeModule,
			Status: roadmap.StatusUnlocked,
			Children: []roadmap.Step{
				{ID: "l1", Title: "Lesson One", Type: roadmap.TypeLesson, Status: roadmap.StatusCompleted},
				{
					ID:     "s1",
					Title:  "Section One",
					Type:   roadmap.TypeSection,
					Status: roadmap.StatusUnlocked,
					Children: []roadmap.Step{
						{ID: "q1", Title: "Quiz One", Type: roadmap.TypeQuiz, Status: roadmap.StatusLocked},
					},
				},
			},
		},
		{ID: "m2", Title: "Module Two", Type: roadmap.TypeModule, Status: roadmap.StatusLocked},
	}
}

func TestRenderEmptyRoadmap(t *testing.T) {
	r := NewPlainRenderer(nil)
	got := r.Render(nil)
	want := "No steps in this roadmap yet.\n"
	if got != want {
		t.Errorf("empty render = %q, want %q", got, want)
	}
}

func TestCollapsibleOnlyForContainersWithChildren(t *testing.T) {
	cases := []struct {
		name string
		step roadmap.Step
		want bool
	}{
		{"module with children", roadmap.Step{Type: roadmap.TypeModule, Children: []roadmap.Step{{}}}, true},
		{"section with children", roadmap.Step{Type: roadmap.TypeSection, Children: []roadmap.Step{{}}}, true},
		{"module without children", roadmap.Step{Type: roadmap.TypeModule}, false},
		{"lesson with children", roadmap.Step{Type: roadmap.TypeLesson, Children: []roadmap.Step{{}}}, false},
		{"quiz with children", roadmap.Step{Type: roadmap.TypeQuiz, Children: []roadmap.Step{{}}}, false},
	}
	for _, tc := range cases {
		if got := Collapsible(&tc.step); got != tc.want {
			t.Errorf("%s: Collapsible = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDefaultExpandedPolicy(t *testing.T) {
	steps := sampleSteps()
	expanded := DefaultExpanded(steps)

	// Root-level containers start expanded, deeper ones collapsed.
	if !expanded["m1"] {
		t.Error("root module m1 should start expanded")
	}
	if expanded["s1"] {
		t.Error("nested section s1 should start collapsed")
	}
	// m2 has no children, so it never enters the expand map.
	if _, ok := expanded["m2"]; ok {
		t.Error("childless module m2 should not be tracked")
	}
}

func TestLinesHideCollapsedSubtrees(t *testing.T) {
	steps := sampleSteps()
	r := NewPlainRenderer(steps)

	ids := visibleIDs(r, steps)
	want := []string{"m1", "l1", "s1", "m2"}
	if !equalStrings(ids, want) {
		t.Fatalf("visible ids = %v, want %v", ids, want)
	}

	r.Toggle("s1")
	ids = visibleIDs(r, steps)
	want = []string{"m1", "l1", "s1", "q1", "m2"}
	if !equalStrings(ids, want) {
		t.Fatalf("after expanding s1, visible ids = %v, want %v", ids, want)
	}

	r.Toggle("m1")
	ids = visibleIDs(r, steps)
	want = []string{"m1", "m2"}
	if !equalStrings(ids, want) {
		t.Fatalf("after collapsing m1, visible ids = %v, want %v", ids, want)
	}
}

func TestToggleDoesNotAffectSiblings(t *testing.T) {
	steps := sampleSteps()
	r := NewPlainRenderer(steps)

	before := r.IsExpanded("m1")
	r.Toggle("s1")
	if r.IsExpanded("m1") != before {
		t.Error("toggling s1 changed m1's expand state")
	}
}

func TestNonContainerChildrenAlwaysVisible(t *testing.T) {
	steps := []roadmap.Step{
		{
			ID:    "l1",
			Title: "Lesson with sub-steps",
			Type:  roadmap.TypeLesson,
			Children: []roadmap.Step{
				{ID: "l1a", Title: "Part A", Type: roadmap.TypeLesson},
				{ID: "l1b", Title: "Part B", Type: roadmap.TypeLesson},
			},
		},
	}
	r := NewPlainRenderer(steps)
	ids := visibleIDs(r, steps)
	want := []string{"l1", "l1a", "l1b"}
	if !equalStrings(ids, want) {
		t.Fatalf("visible ids = %v, want %v", ids, want)
	}
}

func TestExpandAllShowsEveryStep(t *testing.T) {
	steps := sampleSteps()
	r := NewPlainRenderer(steps)
	r.ExpandAll(steps)

	rm := roadmap.Roadmap{Steps: steps}
	if got, want := len(r.Lines(steps)), rm.TotalSteps(); got != want {
		t.Errorf("expanded line count = %d, want %d", got, want)
	}
}

func TestIndentationGrowsWithDepth(t *testing.T) {
	steps := sampleSteps()
	r := NewPlainRenderer(steps)
	r.ExpandAll(steps)

	wantDepths := map[string]int{"m1": 0, "l1": 1, "s1": 1, "q1": 2, "m2": 0}
	for _, line := range r.Lines(steps) {
		if want, ok := wantDepths[line.Step.ID]; ok && line.Depth != want {
			t.Errorf("%s: depth = %d, want %d", line.Step.ID, line.Depth, want)
		}
	}

	// The rendered text indents two spaces per depth level.
	rendered := strings.Split(strings.TrimRight(r.Render(steps), "\n"), "\n")
	for i, line := range r.Lines(steps) {
		prefix := strings.Repeat(" ", line.Depth*indentWidth)
		if !strings.HasPrefix(rendered[i], prefix) {
			t.Errorf("line %d: want indent %q, got %q", i, prefix, rendered[i])
		}
	}
}

func TestRenderPreservesInputOrder(t *testing.T) {
	steps := []roadmap.Step{
		{ID: "c", Title: "Charlie", Type: roadmap.TypeLesson},
		{ID: "a", Title: "Alpha", Type: roadmap.TypeLesson},
		{ID: "b", Title: "Bravo", Type: roadmap.TypeLesson},
	}
	r := NewPlainRenderer(steps)
	ids := visibleIDs(r, steps)
	if !equalStrings(ids, []string{"c", "a", "b"}) {
		t.Errorf("order not preserved: %v", ids)
	}
}

func TestRenderIncludesDuration(t *testing.T) {
	steps := []roadmap.Step{
		{ID: "l1", Title: "Lesson", Type: roadmap.TypeLesson, EstimatedDuration: "30 min"},
	}
	r := NewPlainRenderer(steps)
	if out := r.Render(steps); !strings.Contains(out, "Lesson (30 min)") {
		t.Errorf("duration missing from output: %q", out)
	}
}

func TestCollapseMarkers(t *testing.T) {
	steps := sampleSteps()
	r := NewPlainRenderer(steps)

	out := r.Render(steps)
	if !strings.Contains(out, markerExpanded+" ") {
		t.Error("expanded root module should show the expanded marker")
	}
	if !strings.Contains(out, markerCollapsed+" ") {
		t.Error("collapsed nested section should show the collapsed marker")
	}
}

func TestUnknownTypeAndStatusFallBack(t *testing.T) {
	steps := []roadmap.Step{
		{ID: "x", Title: "Mystery", Type: "hologram", Status: "quantum"},
	}
	r := NewPlainRenderer(steps)
	out := r.Render(steps)

	if !strings.Contains(out, TypeIcon("hologram")) {
		t.Error("unknown type should use the fallback type icon")
	}
	if !strings.Contains(out, StatusIcon("quantum")) {
		t.Error("unknown status should use the fallback status icon")
	}
	if !strings.Contains(out, "Mystery") {
		t.Error("unknown enums must not suppress the step title")
	}
}

func TestTypeIconTotal(t *testing.T) {
	known := []roadmap.StepType{
		roadmap.TypeLesson, roadmap.TypeModule, roadmap.TypeQuiz,
		roadmap.TypeAssignment, roadmap.TypeSection, roadmap.TypeExternalResource,
	}
	seen := map[string]bool{}
	for _, st := range known {
		icon := TypeIcon(st)
		if icon == "" {
			t.Errorf("no icon for type %s", st)
		}
		seen[icon] = true
	}
	if TypeIcon("nope") == "" {
		t.Error("fallback type icon missing")
	}
}

func TestStatusStyleTotal(t *testing.T) {
	for _, ss := range []roadmap.StepStatus{
		roadmap.StatusLocked, roadmap.StatusUnlocked, roadmap.StatusInProgress,
		roadmap.StatusCompleted, roadmap.StatusFailed, "bogus",
	} {
		// Must not panic and must render the text through.
		if got := StatusStyle(ss).Render("x"); !strings.Contains(got, "x") {
			t.Errorf("style for %s lost the text: %q", ss, got)
		}
	}
}

func TestHeaderAndMetaStylesRenderText(t *testing.T) {
	if got := TitleStyle.Render(" Go Trail "); !strings.Contains(got, "Go Trail") {
		t.Errorf("title style lost its text: %q", got)
	}
	if got := MetaStyle.Render("(1h)"); !strings.Contains(got, "(1h)") {
		t.Errorf("meta style lost its text: %q", got)
	}
}

func visibleIDs(r *Renderer, steps []roadmap.Step) []string {
	var ids []string
	for _, line := range r.Lines(steps) {
		ids = append(ids, line.Step.ID)
	}
	return ids
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
