package schema

import (
	"strings"
	"testing"
)

func TestValidateRoadmapJSONAccepts(t *testing.T) {
	doc := `{
	  "id": "go-trail",
	  "title": "Go Trail",
	  "tags": ["go", "backend"],
	  "steps": [
	    {
	      "id": "m1", "title": "Module", "type": "module",
	      "children": [
	        {"id": "l1", "title": "Lesson", "type": "lesson", "points": 5, "estimated_duration": "30m"}
	      ]
	    }
	  ]
	}`
	if err := ValidateRoadmapJSON(doc); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}
}

func TestValidateRoadmapJSONRejects(t *testing.T) {
	cases := map[string]string{
		"missing id":       `{"title": "t", "steps": []}`,
		"missing title":    `{"id": "x", "steps": []}`,
		"missing steps":    `{"id": "x", "title": "t"}`,
		"empty step id":    `{"id": "x", "title": "t", "steps": [{"id": "", "title": "s", "type": "lesson"}]}`,
		"step sans type":   `{"id": "x", "title": "t", "steps": [{"id": "s", "title": "s"}]}`,
		"negative points":  `{"id": "x", "title": "t", "steps": [{"id": "s", "title": "s", "type": "lesson", "points": -1}]}`,
		"nested violation": `{"id": "x", "title": "t", "steps": [{"id": "s", "title": "s", "type": "module", "children": [{"id": "c"}]}]}`,
	}
	for name, doc := range cases {
		if err := ValidateRoadmapJSON(doc); err == nil {
			t.Errorf("%s: document accepted", name)
		}
	}
}

func TestValidateRoadmapJSONListsAllViolations(t *testing.T) {
	err := ValidateRoadmapJSON(`{"steps": []}`)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, field := range []string{"id", "title"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention %s: %v", field, err)
		}
	}
}
