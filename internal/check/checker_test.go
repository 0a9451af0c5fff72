package check

import (
	"context"
	"testing"

	"github.com/mkurien/skillpath/internal/llm"
	"github.com/mkurien/skillpath/internal/resolve"
	"github.com/mkurien/skillpath/internal/skills"
)

func newChecker() (*Checker, *llm.MockProvider) {
	mock := llm.NewMockProvider()
	return New(resolve.NewResolver(mock, nil)), mock
}

func TestCheck_MissingDependency(t *testing.T) {
	c, mock := newChecker()
	col := skills.NewCollection()
	col.Add("Kubernetes", skills.Learning)

	warnings := c.Check(context.Background(), col, skills.UserContext{})

	var found *Warning
	for i := range warnings {
		if warnings[i].Dependency == "Docker" {
			found = &warnings[i]
		}
	}
	if found == nil {
		t.Fatalf("expected a Docker warning, got %+v", warnings)
	}
	if found.Type != MissingDependency || found.Severity != SeverityMedium {
		t.Fatalf("unexpected warning: %+v", found)
	}
	if mock.CallCount() != 0 {
		t.Fatal("static skills must not reach the provider")
	}
}

func TestCheck_ProficiencyMismatch(t *testing.T) {
	c, _ := newChecker()
	col := skills.NewCollection()
	col.Add("Kubernetes", skills.Proficient)
	col.Add("Docker", skills.WantToLearn)

	warnings := c.Check(context.Background(), col, skills.UserContext{})

	var found *Warning
	for i := range warnings {
		if warnings[i].Dependency == "Docker" {
			found = &warnings[i]
		}
	}
	if found == nil {
		t.Fatal("expected a Docker mismatch warning")
	}
	if found.Type != ProficiencyMismatch || found.Severity != SeverityLow {
		t.Fatalf("unexpected warning: %+v", found)
	}
}

func TestCheck_SatisfiedDependencyIsQuiet(t *testing.T) {
	c, _ := newChecker()
	col := skills.NewCollection()
	col.Add("Kubernetes", skills.Learning)
	col.Add("Docker", skills.Proficient)
	col.Add("Linux", skills.Proficient)

	for _, w := range c.Check(context.Background(), col, skills.UserContext{}) {
		if w.SkillName == "Kubernetes" && w.Dependency == "Docker" {
			t.Fatalf("unexpected warning for satisfied dependency: %+v", w)
		}
	}
}

func TestCheck_WantToLearnSkillsAreSkipped(t *testing.T) {
	c, _ := newChecker()
	col := skills.NewCollection()
	col.Add("Kubernetes", skills.WantToLearn)

	warnings := c.Check(context.Background(), col, skills.UserContext{})
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings for aspirational skills, got %+v", warnings)
	}
}

func TestCheck_DeterministicIDs(t *testing.T) {
	c, _ := newChecker()
	col := skills.NewCollection()
	col.Add("Kubernetes", skills.Learning)

	first := c.Check(context.Background(), col, skills.UserContext{})
	second := c.Check(context.Background(), col, skills.UserContext{})
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("expected identical warning sets, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("warning IDs differ across runs: %q vs %q", first[i].ID, second[i].ID)
		}
	}
}

func TestCheck_DependencyMatchIsFuzzy(t *testing.T) {
	c, _ := newChecker()
	col := skills.NewCollection()
	col.Add("Kubernetes", skills.Learning)
	// Held under a near-name; Match is substring-tolerant.
	col.Add("docker", skills.Proficient)

	for _, w := range c.Check(context.Background(), col, skills.UserContext{}) {
		if w.Dependency == "Docker" {
			t.Fatalf("expected fuzzy match to satisfy Docker, got %+v", w)
		}
	}
}

func TestWarningsForSkill_FiltersBulkResult(t *testing.T) {
	c, _ := newChecker()
	col := skills.NewCollection()
	k8s, _ := col.Add("Kubernetes", skills.Learning)
	col.Add("Django", skills.Learning)

	only := c.WarningsForSkill(context.Background(), col, skills.UserContext{}, k8s.ID)
	if len(only) == 0 {
		t.Fatal("expected warnings for Kubernetes")
	}
	for _, w := range only {
		if w.SkillName != "Kubernetes" {
			t.Fatalf("unexpected skill in filtered set: %+v", w)
		}
	}

	if got := c.WarningsForSkill(context.Background(), col, skills.UserContext{}, "missing-id"); got != nil {
		t.Fatalf("expected nil for unknown skill, got %+v", got)
	}
}
