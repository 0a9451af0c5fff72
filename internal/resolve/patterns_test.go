package resolve

import "testing"

func TestMatchPattern_SpecificBeforeGeneral(t *testing.T) {
	rec, ok := MatchPattern("React Native for iOS")
	if !ok {
		t.Fatal("expected match")
	}
	if rec.Category != "mobile" {
		t.Fatalf("expected the react-native rule, got category %q", rec.Category)
	}

	rec, ok = MatchPattern("React Hooks")
	if !ok {
		t.Fatal("expected match")
	}
	if rec.Category != "frontend" {
		t.Fatalf("expected the react rule, got category %q", rec.Category)
	}
}

func TestMatchPattern_KeepsInputName(t *testing.T) {
	rec, ok := MatchPattern("Advanced Kubernetes Operators")
	if !ok {
		t.Fatal("expected match")
	}
	if rec.SkillName != "Advanced Kubernetes Operators" {
		t.Fatalf("expected input name preserved, got %q", rec.SkillName)
	}
	if rec.Source != SourcePattern {
		t.Fatalf("expected pattern source, got %q", rec.Source)
	}
	if len(rec.Dependencies) != 1 || rec.Dependencies[0] != "Docker" {
		t.Fatalf("expected Docker dependency, got %v", rec.Dependencies)
	}
}

func TestMatchPattern_K8sAlias(t *testing.T) {
	rec, ok := MatchPattern("k8s administration")
	if !ok || rec.Category != "devops" {
		t.Fatalf("expected k8s to hit the kubernetes rule, got %+v ok=%v", rec, ok)
	}
}

func TestMatchPattern_DockerExcludedByKubernetes(t *testing.T) {
	rec, ok := MatchPattern("Docker on Kubernetes")
	if !ok {
		t.Fatal("expected match")
	}
	// The kubernetes rule must win; the docker rule excludes it.
	if rec.Difficulty != 8 {
		t.Fatalf("expected the kubernetes rule, got difficulty %d", rec.Difficulty)
	}
}

func TestMatchPattern_GoRequiresExplicitForm(t *testing.T) {
	if _, ok := MatchPattern("Django"); !ok {
		t.Fatal("expected django to match a pattern")
	}
	rec, _ := MatchPattern("Django")
	if rec.Category != "backend" {
		t.Fatalf("expected backend, got %q", rec.Category)
	}

	rec, ok := MatchPattern("Golang concurrency")
	if !ok || rec.Category != "backend" {
		t.Fatalf("expected golang rule, got %+v ok=%v", rec, ok)
	}
}

func TestMatchPattern_NoMatch(t *testing.T) {
	for _, name := range []string{"", "   ", "Public Speaking", "Watercolor Painting"} {
		if _, ok := MatchPattern(name); ok {
			t.Fatalf("expected no match for %q", name)
		}
	}
}

func TestMatchPattern_ReturnsCopies(t *testing.T) {
	a, _ := MatchPattern("react")
	a.Dependencies[0] = "Mutated"
	b, _ := MatchPattern("react")
	if b.Dependencies[0] == "Mutated" {
		t.Fatal("pattern rule table was mutated through a returned record")
	}
}
