package recommend

import (
	"context"
	"testing"

	"github.com/mkurien/skillpath/internal/llm"
	"github.com/mkurien/skillpath/internal/resolve"
	"github.com/mkurien/skillpath/internal/skills"
)

func newEngine() (*Engine, *llm.MockProvider) {
	mock := llm.NewMockProvider()
	return New(resolve.NewResolver(mock, nil)), mock
}

func TestRecommendNext_FollowsEnablementEdges(t *testing.T) {
	e, mock := newEngine()
	col := skills.NewCollection()
	col.Add("React", skills.Mastered)

	recs := e.RecommendNext(context.Background(), col, skills.UserContext{})
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}

	byName := map[string]Recommendation{}
	for _, r := range recs {
		byName[r.SkillName] = r
	}
	next, ok := byName["Next.js"]
	if !ok {
		t.Fatalf("expected Next.js among %+v", recs)
	}
	if next.Type != TypeNextStep {
		t.Fatalf("expected next_step, got %q", next.Type)
	}
	if next.CurrentSkillProficiency != "mastered" {
		t.Fatalf("expected mastered proficiency tag, got %q", next.CurrentSkillProficiency)
	}

	if mock.CallCount() != 0 {
		t.Fatalf("recommendation building must not call the provider, got %d calls", mock.CallCount())
	}
}

func TestRecommendNext_SkipsHeldSkills(t *testing.T) {
	e, _ := newEngine()
	col := skills.NewCollection()
	col.Add("React", skills.Mastered)
	col.Add("Next.js", skills.Learning)

	for _, r := range e.RecommendNext(context.Background(), col, skills.UserContext{}) {
		if r.SkillName == "Next.js" {
			t.Fatalf("held skill recommended: %+v", r)
		}
	}
}

func TestRecommendNext_CapAndUniqueness(t *testing.T) {
	e, _ := newEngine()
	col := skills.NewCollection()
	// Broad holdings fan out many candidate suggestions.
	col.Add("React", skills.Mastered)
	col.Add("Python", skills.Proficient)
	col.Add("Docker", skills.Proficient)
	col.Add("PostgreSQL", skills.Learning)

	recs := e.RecommendNext(context.Background(), col, skills.UserContext{CurrentRole: "backend engineer"})
	if len(recs) > MaxRecommendations {
		t.Fatalf("expected at most %d recommendations, got %d", MaxRecommendations, len(recs))
	}

	seen := map[string]bool{}
	for _, r := range recs {
		key := resolve.NormalizeName(r.SkillName)
		if seen[key] {
			t.Fatalf("duplicate recommendation: %q", r.SkillName)
		}
		seen[key] = true
	}
}

func TestRecommendNext_SortedByPriority(t *testing.T) {
	e, _ := newEngine()
	col := skills.NewCollection()
	col.Add("React", skills.Mastered)
	col.Add("Git", skills.Learning)

	recs := e.RecommendNext(context.Background(), col, skills.UserContext{})
	rank := map[Priority]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}
	for i := 1; i < len(recs); i++ {
		if rank[recs[i-1].Priority] > rank[recs[i].Priority] {
			t.Fatalf("recommendations out of priority order at %d: %+v", i, recs)
		}
	}
}

func TestRecommendNext_AdvancedTypeForHardTargets(t *testing.T) {
	e, _ := newEngine()
	col := skills.NewCollection()
	// Docker enables Kubernetes, which is difficulty 8.
	col.Add("Docker", skills.Mastered)

	recs := e.RecommendNext(context.Background(), col, skills.UserContext{})
	for _, r := range recs {
		if r.SkillName == "Kubernetes" {
			if r.Type != TypeAdvanced {
				t.Fatalf("expected advanced type for Kubernetes, got %q", r.Type)
			}
			return
		}
	}
	t.Fatalf("expected Kubernetes among %+v", recs)
}

func TestRecommendNext_TrendingFallback(t *testing.T) {
	e, _ := newEngine()
	col := skills.NewCollection()

	recs := e.RecommendNext(context.Background(), col, skills.UserContext{})
	if len(recs) == 0 {
		t.Fatal("expected trending fallback for an empty collection")
	}
	for _, r := range recs {
		if r.Priority != PriorityLow {
			t.Fatalf("trending suggestions should be low priority: %+v", r)
		}
	}
}

func TestRecommendNext_RoleSuggestions(t *testing.T) {
	e, _ := newEngine()
	col := skills.NewCollection()

	recs := e.RecommendNext(context.Background(), col, skills.UserContext{CurrentRole: "Senior Frontend Developer"})
	found := false
	for _, r := range recs {
		if r.SkillName == "React" || r.SkillName == "TypeScript" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected role-based suggestions, got %+v", recs)
	}
}

func TestEnablePriority(t *testing.T) {
	tests := []struct {
		p    skills.Proficiency
		diff int
		want Priority
	}{
		{skills.Mastered, 4, PriorityHigh},
		{skills.Mastered, 7, PriorityMedium},
		{skills.Mastered, 9, PriorityMedium},
		{skills.Proficient, 6, PriorityMedium},
		{skills.Proficient, 9, PriorityLow},
		{skills.Learning, 3, PriorityLow},
	}
	for _, tt := range tests {
		if got := enablePriority(tt.p, tt.diff); got != tt.want {
			t.Errorf("enablePriority(%v, %d) = %q, want %q", tt.p, tt.diff, got, tt.want)
		}
	}
}
