package recommend

import (
	"context"
	"fmt"

	"github.com/mkurien/skillpath/internal/resolve"
	"github.com/mkurien/skillpath/internal/skills"
)

// maxPathDepth bounds the prerequisite walk. Real dependency chains are
// short; anything deeper is a sign the remote backend is inventing
// prerequisites.
const maxPathDepth = 10

// PathStep is one entry in an ordered learning path.
type PathStep struct {
	SkillName      string  `json:"skillName"`
	Description    string  `json:"description"`
	Difficulty     int     `json:"difficulty"`
	EstimatedHours float64 `json:"estimatedHours"`
	Category       string  `json:"category"`
	IsTarget       bool    `json:"isTarget"`
}

// BuildLearningPath walks the target skill's prerequisites depth-first
// and returns them in learnable order, target last. Skills the user
// already holds at meaningful proficiency are skipped, and a visited set
// keyed by normalized name guards against cycles in inferred data. If
// the walk yields nothing actionable, a single generic entry for the
// target is returned so the caller always has a path to show.
func (e *Engine) BuildLearningPath(ctx context.Context, target string, col *skills.Collection, uc skills.UserContext) []PathStep {
	visited := make(map[string]bool)
	var path []PathStep

	var walk func(name string, depth int, isTarget bool)
	walk = func(name string, depth int, isTarget bool) {
		key := resolve.NormalizeName(name)
		if key == "" || visited[key] || depth > maxPathDepth {
			return
		}
		visited[key] = true

		if s, ok := col.Match(name); ok && s.Proficiency.Meaningful() && !isTarget {
			return
		}

		rec := e.resolver.Resolve(ctx, name, uc)
		for _, dep := range rec.Dependencies {
			walk(dep, depth+1, false)
		}

		path = append(path, PathStep{
			SkillName:      rec.SkillName,
			Description:    rec.Description,
			Difficulty:     rec.Difficulty,
			EstimatedHours: rec.EstimatedHours,
			Category:       rec.Category,
			IsTarget:       isTarget,
		})
	}

	walk(target, 0, true)

	if len(path) == 0 {
		path = []PathStep{{
			SkillName:      target,
			Description:    fmt.Sprintf("Start with the fundamentals and build toward %s.", target),
			Difficulty:     5,
			EstimatedHours: 20,
			Category:       "general",
			IsTarget:       true,
		}}
	}
	return path
}
