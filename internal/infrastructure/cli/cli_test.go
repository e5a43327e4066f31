package cli

import (
	"errors"
	"io/fs"
	"testing"
)

func TestParseAnswers(t *testing.T) {
	answers, err := parseAnswers([]string{"q1=a", "q2=b,c", "q3= d , e "})
	if err != nil {
		t.Fatal(err)
	}
	if len(answers["q1"]) != 1 || answers["q1"][0] != "a" {
		t.Errorf("q1 = %v", answers["q1"])
	}
	if len(answers["q2"]) != 2 {
		t.Errorf("q2 = %v", answers["q2"])
	}
	if len(answers["q3"]) != 2 || answers["q3"][0] != "d" {
		t.Errorf("q3 = %v", answers["q3"])
	}
}

func TestParseAnswersRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"q1", "=a", "q1=", ""} {
		if _, err := parseAnswers([]string{bad}); err == nil {
			t.Errorf("parseAnswers(%q) should fail", bad)
		}
	}
}

func TestStarterRoadmapIsValid(t *testing.T) {
	rm := starterRoadmap("Test")
	if errs := rm.Validate(); len(errs) != 0 {
		t.Errorf("starter roadmap invalid: %v", errs)
	}
	if rm.TotalSteps() < 4 {
		t.Errorf("starter roadmap has only %d steps", rm.TotalSteps())
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{
		"init", "show", "browse", "dashboard", "status", "step", "quiz",
		"assignment", "badges", "import", "export", "validate", "generate",
		"watch", "serve", "activity", "completion",
	}
	have := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestMapErrorHintsOnMissingWorkspace(t *testing.T) {
	err := MapError(fs.ErrNotExist)

	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		t.Fatalf("MapError returned %T", err)
	}
	if cliErr.Hint == "" {
		t.Error("missing-workspace error should carry a hint")
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	sentinel := errors.New("something else")
	if got := MapError(sentinel); got != sentinel {
		t.Errorf("MapError rewrote an unknown error: %v", got)
	}
	if MapError(nil) != nil {
		t.Error("MapError(nil) should be nil")
	}
}
