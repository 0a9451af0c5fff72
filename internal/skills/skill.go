package skills

import (
	"fmt"
	"strings"
	"time"
)

// Proficiency is a self-assessed command of a skill, ordered from
// aspiration to mastery.
type Proficiency int

const (
	WantToLearn Proficiency = iota
	Learning
	Proficient
	Mastered
)

// AllProficiencies returns the tiers in ascending order.
func AllProficiencies() []Proficiency {
	return []Proficiency{WantToLearn, Learning, Proficient, Mastered}
}

// String returns the canonical wire form of the tier.
func (p Proficiency) String() string {
	switch p {
	case WantToLearn:
		return "want_to_learn"
	case Learning:
		return "learning"
	case Proficient:
		return "proficient"
	case Mastered:
		return "mastered"
	default:
		return "unknown"
	}
}

// Label returns a human-readable name for the tier.
func (p Proficiency) Label() string {
	switch p {
	case WantToLearn:
		return "Want to Learn"
	case Learning:
		return "Learning"
	case Proficient:
		return "Proficient"
	case Mastered:
		return "Mastered"
	default:
		return "Unknown"
	}
}

// Meaningful reports whether the tier is at or above Learning. Only
// meaningfully-held skills trigger dependency checks and enable
// recommendations.
func (p Proficiency) Meaningful() bool {
	return p >= Learning
}

// ParseProficiency accepts wire form, display form, or common aliases.
func ParseProficiency(s string) (Proficiency, error) {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "-", "_"))) {
	case "want_to_learn", "want to learn", "want":
		return WantToLearn, nil
	case "learning":
		return Learning, nil
	case "proficient":
		return Proficient, nil
	case "mastered", "mastery":
		return Mastered, nil
	default:
		names := make([]string, 0, 4)
		for _, p := range AllProficiencies() {
			names = append(names, p.String())
		}
		return WantToLearn, fmt.Errorf("unknown proficiency %q (expected one of: %s)", s, strings.Join(names, ", "))
	}
}

// ChecklistItem is a single self-assessment entry on a skill.
type ChecklistItem struct {
	ID        string
	Text      string
	Completed bool
}

// TeachingEvaluation is one scored self-explanation. The list on a skill
// is append-only.
type TeachingEvaluation struct {
	ID          string
	Explanation string
	Score       int // 0-100
	Feedback    string
	CreatedAt   time.Time
}

// Skill is a user-owned skill record.
type Skill struct {
	ID            string
	Name          string
	Proficiency   Proficiency
	Checklist     []ChecklistItem
	TeachingEvals []TeachingEvaluation
	CreatedAt     time.Time
}

// UserContext carries optional background about the user, used to tailor
// dependency descriptions and recommendation reasons. All fields optional.
type UserContext struct {
	YearsOfExperience int      `json:"yearsOfExperience,omitempty"`
	CurrentRole       string   `json:"currentRole,omitempty"`
	ExistingSkills    []string `json:"existingSkills,omitempty"`
	Industry          string   `json:"industry,omitempty"`
}
