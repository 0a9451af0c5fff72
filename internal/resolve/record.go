package resolve

import (
	"slices"
	"strings"
	"time"
)

// Source marks which resolution tier produced a dependency record.
type Source string

const (
	SourceStatic  Source = "static-table"
	SourcePattern Source = "pattern-matched"
	SourceCached  Source = "cached"
	SourceRemote  Source = "remote-inferred"
)

// Record is the resolved description of a skill's prerequisites,
// difficulty, learning-time estimate, and the skills it unlocks.
// Records are derived data; only remote-inferred ones are retained,
// in the resolution cache.
type Record struct {
	SkillName      string     `json:"skillName"`
	Dependencies   []string   `json:"dependencies"`
	Description    string     `json:"description"`
	Difficulty     int        `json:"difficulty"`
	EstimatedHours float64    `json:"estimatedHours"`
	Enables        []string   `json:"enables"`
	Category       string     `json:"category"`
	Source         Source     `json:"source"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
}

// Clamp enforces the record invariants: difficulty in [1,10] and
// estimated hours >= 1.
func (r *Record) Clamp() {
	if r.Difficulty < 1 {
		r.Difficulty = 1
	}
	if r.Difficulty > 10 {
		r.Difficulty = 10
	}
	if r.EstimatedHours < 1 {
		r.EstimatedHours = 1
	}
}

// clone returns a deep copy so callers can't mutate shared slices.
func (r Record) clone() Record {
	r.Dependencies = slices.Clone(r.Dependencies)
	r.Enables = slices.Clone(r.Enables)
	return r
}

// NormalizeName is the canonical key form for skill names: lowercase,
// surrounding whitespace trimmed.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
