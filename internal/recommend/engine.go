// Package recommend derives prioritized "learn next" suggestions from a
// user's skill collection: direct enablement edges, category and role
// heuristics, alternative-technology clusters, and a trending fallback.
package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/mkurien/skillpath/internal/resolve"
	"github.com/mkurien/skillpath/internal/skills"
)

// MaxRecommendations caps the ranked output for display purposes.
const MaxRecommendations = 8

// Type classifies why a skill is being suggested.
type Type string

const (
	TypePrerequisite Type = "prerequisite"
	TypeNextStep     Type = "next_step"
	TypeAdvanced     Type = "advanced"
)

// Priority is the ranking tier for a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// Recommendation is one ranked "learn next" suggestion. Derived fresh
// per request, never stored.
type Recommendation struct {
	ID                      string   `json:"id"`
	SkillName               string   `json:"skillName"`
	Type                    Type     `json:"type"`
	Reason                  string   `json:"reason"`
	Difficulty              int      `json:"difficulty"`
	EstimatedHours          float64  `json:"estimatedHours"`
	Category                string   `json:"category"`
	Priority                Priority `json:"priority"`
	CurrentSkillProficiency string   `json:"currentSkillProficiency,omitempty"`
}

// Engine builds recommendations over a dependency resolver.
type Engine struct {
	resolver *resolve.Resolver
}

// New creates an Engine.
func New(resolver *resolve.Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// RecommendNext merges all suggestion sources, deduplicates by
// normalized skill name (first occurrence wins, so enablement edges and
// role rules beat looser heuristics), sorts by priority tier then
// ascending difficulty, and caps the result.
func (e *Engine) RecommendNext(ctx context.Context, col *skills.Collection, uc skills.UserContext) []Recommendation {
	var recs []Recommendation

	recs = append(recs, e.fromEnables(col)...)
	recs = append(recs, e.fromHeuristics(col, uc)...)
	recs = append(recs, e.fromClusters(col)...)
	recs = append(recs, e.fromTrending(col)...)

	recs = dedupe(recs)

	sort.SliceStable(recs, func(i, j int) bool {
		pi, pj := priorityRank[recs[i].Priority], priorityRank[recs[j].Priority]
		if pi != pj {
			return pi < pj
		}
		return recs[i].Difficulty < recs[j].Difficulty
	})

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

// fromEnables follows the "enables" edges of every skill the user holds
// at meaningful proficiency.
func (e *Engine) fromEnables(col *skills.Collection) []Recommendation {
	var out []Recommendation
	for _, s := range col.All() {
		if !s.Proficiency.Meaningful() {
			continue
		}
		rec, ok := e.resolver.ResolveLocal(s.Name)
		if !ok {
			continue
		}
		for _, enabled := range rec.Enables {
			if _, held := col.Match(enabled); held {
				continue
			}
			info := e.lookupInfo(enabled)
			t := TypeNextStep
			if info.Difficulty >= 8 {
				t = TypeAdvanced
			}
			out = append(out, Recommendation{
				ID:                      recID(enabled, t),
				SkillName:               enabled,
				Type:                    t,
				Reason:                  fmt.Sprintf("Your %s experience unlocks %s.", s.Name, enabled),
				Difficulty:              info.Difficulty,
				EstimatedHours:          info.EstimatedHours,
				Category:                info.Category,
				Priority:                enablePriority(s.Proficiency, info.Difficulty),
				CurrentSkillProficiency: s.Proficiency.String(),
			})
		}
	}
	return out
}

// fromHeuristics combines category complements with role-based rules.
func (e *Engine) fromHeuristics(col *skills.Collection, uc skills.UserContext) []Recommendation {
	var out []Recommendation

	for _, name := range skillsForRole(uc.CurrentRole) {
		if _, held := col.Match(name); held {
			continue
		}
		info := e.lookupInfo(name)
		out = append(out, Recommendation{
			ID:             recID(name, TypeNextStep),
			SkillName:      name,
			Type:           TypeNextStep,
			Reason:         fmt.Sprintf("Commonly expected in a %s role.", uc.CurrentRole),
			Difficulty:     info.Difficulty,
			EstimatedHours: info.EstimatedHours,
			Category:       info.Category,
			Priority:       PriorityMedium,
		})
	}

	seen := map[string]bool{}
	for _, s := range col.All() {
		if !s.Proficiency.Meaningful() {
			continue
		}
		rec, ok := e.resolver.ResolveLocal(s.Name)
		if !ok || seen[rec.Category] {
			continue
		}
		seen[rec.Category] = true
		for _, name := range categoryComplements[rec.Category] {
			if _, held := col.Match(name); held {
				continue
			}
			info := e.lookupInfo(name)
			out = append(out, Recommendation{
				ID:             recID(name, TypeNextStep),
				SkillName:      name,
				Type:           TypeNextStep,
				Reason:         fmt.Sprintf("Rounds out your %s work.", rec.Category),
				Difficulty:     info.Difficulty,
				EstimatedHours: info.EstimatedHours,
				Category:       info.Category,
				Priority:       PriorityMedium,
			})
		}
	}

	return out
}

// fromClusters suggests alternative technologies semantically close to
// ones the user already knows.
func (e *Engine) fromClusters(col *skills.Collection) []Recommendation {
	var out []Recommendation
	for _, cluster := range semanticClusters {
		var held string
		for _, name := range cluster {
			if s, ok := col.Match(name); ok && s.Proficiency.Meaningful() {
				held = name
				break
			}
		}
		if held == "" {
			continue
		}
		for _, name := range cluster {
			if name == held {
				continue
			}
			if _, already := col.Match(name); already {
				continue
			}
			info := e.lookupInfo(name)
			out = append(out, Recommendation{
				ID:             recID(name, TypeNextStep),
				SkillName:      name,
				Type:           TypeNextStep,
				Reason:         fmt.Sprintf("Alternative to %s; your experience transfers.", held),
				Difficulty:     info.Difficulty,
				EstimatedHours: info.EstimatedHours,
				Category:       info.Category,
				Priority:       PriorityLow,
			})
		}
	}
	return out
}

// fromTrending is the fallback so the user always sees something.
func (e *Engine) fromTrending(col *skills.Collection) []Recommendation {
	var out []Recommendation
	for _, name := range trendingSkills {
		if _, held := col.Match(name); held {
			continue
		}
		info := e.lookupInfo(name)
		out = append(out, Recommendation{
			ID:             recID(name, TypeNextStep),
			SkillName:      name,
			Type:           TypeNextStep,
			Reason:         fmt.Sprintf("%s is in high demand right now.", name),
			Difficulty:     info.Difficulty,
			EstimatedHours: info.EstimatedHours,
			Category:       info.Category,
			Priority:       PriorityLow,
		})
	}
	return out
}

// lookupInfo scores a candidate skill from the zero-latency resolution
// tiers only. Recommendation building never performs network I/O;
// unknown names get neutral defaults.
func (e *Engine) lookupInfo(name string) resolve.Record {
	if rec, ok := e.resolver.ResolveLocal(name); ok {
		return rec
	}
	return resolve.Record{
		SkillName:      name,
		Difficulty:     5,
		EstimatedHours: 20,
		Category:       "general",
	}
}

// enablePriority ranks a direct enablement edge: deep command of the
// enabling skill plus an easy target means the user can pick it up now.
func enablePriority(p skills.Proficiency, difficulty int) Priority {
	switch {
	case p == skills.Mastered && difficulty <= 5:
		return PriorityHigh
	case p >= skills.Proficient && difficulty <= 7:
		return PriorityMedium
	case p == skills.Mastered:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// dedupe keeps the first occurrence of each normalized skill name.
func dedupe(recs []Recommendation) []Recommendation {
	seen := make(map[string]bool, len(recs))
	out := recs[:0]
	for _, r := range recs {
		key := resolve.NormalizeName(r.SkillName)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

func recID(name string, t Type) string {
	return fmt.Sprintf("rec:%s:%s", resolve.NormalizeName(name), t)
}
