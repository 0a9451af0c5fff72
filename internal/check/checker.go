// Package check cross-references a user's skill collection against
// resolved dependency records and flags gaps: prerequisites the user
// does not have, and prerequisites they rate below Learning.
package check

import (
	"context"
	"fmt"

	"github.com/mkurien/skillpath/internal/resolve"
	"github.com/mkurien/skillpath/internal/skills"
)

// WarningType identifies the kind of consistency gap.
type WarningType string

const (
	MissingDependency   WarningType = "missing_dependency"
	ProficiencyMismatch WarningType = "proficiency_mismatch"
)

// Severity ranks how urgent a warning is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Warning is one flagged gap. Warnings are derived fresh on every check
// and never stored; the ID is deterministic so repeated checks produce
// stable, comparable output.
type Warning struct {
	ID         string      `json:"id"`
	Type       WarningType `json:"type"`
	SkillName  string      `json:"skillName"`
	Dependency string      `json:"dependency"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion"`
	Severity   Severity    `json:"severity"`
}

// Checker walks a skill collection and emits warnings.
type Checker struct {
	resolver *resolve.Resolver
}

// New creates a Checker over the given resolver.
func New(resolver *resolve.Resolver) *Checker {
	return &Checker{resolver: resolver}
}

// Check resolves dependencies for every skill held at Learning or above
// and flags each dependency that is missing from the collection or held
// below Learning. "Want to Learn" skills are skipped: a user does not
// meaningfully know a skill at that tier, so its prerequisites are not
// yet their problem.
func (c *Checker) Check(ctx context.Context, col *skills.Collection, uc skills.UserContext) []Warning {
	var warnings []Warning

	for _, s := range col.All() {
		if !s.Proficiency.Meaningful() {
			continue
		}

		rec := c.resolver.Resolve(ctx, s.Name, uc)
		for _, dep := range rec.Dependencies {
			held, ok := col.Match(dep)
			if !ok {
				warnings = append(warnings, Warning{
					ID:         warningID(s.ID, dep, MissingDependency),
					Type:       MissingDependency,
					SkillName:  s.Name,
					Dependency: dep,
					Message:    fmt.Sprintf("%s builds on %s, which is not in your skills.", s.Name, dep),
					Suggestion: fmt.Sprintf("Add %s and spend some time with the fundamentals before going deeper into %s.", dep, s.Name),
					Severity:   SeverityMedium,
				})
				continue
			}
			if !held.Proficiency.Meaningful() {
				warnings = append(warnings, Warning{
					ID:         warningID(s.ID, dep, ProficiencyMismatch),
					Type:       ProficiencyMismatch,
					SkillName:  s.Name,
					Dependency: dep,
					Message:    fmt.Sprintf("You rate %s as %q, but %s builds on it.", held.Name, held.Proficiency.Label(), s.Name),
					Suggestion: fmt.Sprintf("Shore up %s first; it will make %s easier.", held.Name, s.Name),
					Severity:   SeverityLow,
				})
			}
		}
	}

	return warnings
}

// WarningsForSkill filters the full warning set down to one skill. It is
// a pure filter over Check, so it can never disagree with the bulk result.
func (c *Checker) WarningsForSkill(ctx context.Context, col *skills.Collection, uc skills.UserContext, skillID string) []Warning {
	target, ok := col.Get(skillID)
	if !ok {
		return nil
	}

	var out []Warning
	for _, w := range c.Check(ctx, col, uc) {
		if w.SkillName == target.Name {
			out = append(out, w)
		}
	}
	return out
}

// warningID is a deterministic composite of skill id, dependency name,
// and warning type, enabling stable de-duplication across checks.
func warningID(skillID, dep string, t WarningType) string {
	return fmt.Sprintf("%s:%s:%s", skillID, resolve.NormalizeName(dep), t)
}
