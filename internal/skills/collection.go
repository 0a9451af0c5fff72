package skills

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Collection is a flat in-memory set of skills with case-insensitive
// name uniqueness. It is not safe for concurrent mutation.
type Collection struct {
	skills []Skill
}

// NewCollection creates a Collection seeded with the given skills.
// Later duplicates (case-insensitive name) are dropped.
func NewCollection(seed ...Skill) *Collection {
	c := &Collection{}
	for _, s := range seed {
		if _, ok := c.byName(s.Name); ok {
			continue
		}
		c.skills = append(c.skills, s)
	}
	return c
}

// Add creates a new skill. Adding a name that already exists
// (case-insensitive) is a silent no-op: the existing skill is returned
// with ok=false and the collection is unchanged.
func (c *Collection) Add(name string, p Proficiency) (Skill, bool) {
	if existing, ok := c.byName(name); ok {
		return *existing, false
	}
	s := Skill{
		ID:          uuid.NewString(),
		Name:        name,
		Proficiency: p,
		CreatedAt:   time.Now().UTC(),
	}
	c.skills = append(c.skills, s)
	return s, true
}

// Get returns the skill with the given ID.
func (c *Collection) Get(id string) (Skill, bool) {
	for i := range c.skills {
		if c.skills[i].ID == id {
			return c.skills[i], true
		}
	}
	return Skill{}, false
}

// Rate sets the proficiency of the skill with the given ID.
func (c *Collection) Rate(id string, p Proficiency) bool {
	for i := range c.skills {
		if c.skills[i].ID == id {
			c.skills[i].Proficiency = p
			return true
		}
	}
	return false
}

// Remove deletes the skill with the given ID.
func (c *Collection) Remove(id string) bool {
	for i := range c.skills {
		if c.skills[i].ID == id {
			c.skills = slices.Delete(c.skills, i, i+1)
			return true
		}
	}
	return false
}

// AddChecklistItem appends a checklist entry to the skill.
func (c *Collection) AddChecklistItem(id, text string) (ChecklistItem, bool) {
	for i := range c.skills {
		if c.skills[i].ID == id {
			item := ChecklistItem{ID: uuid.NewString(), Text: text}
			c.skills[i].Checklist = append(c.skills[i].Checklist, item)
			return item, true
		}
	}
	return ChecklistItem{}, false
}

// ToggleChecklistItem flips the completed flag on a checklist entry.
func (c *Collection) ToggleChecklistItem(skillID, itemID string) bool {
	for i := range c.skills {
		if c.skills[i].ID != skillID {
			continue
		}
		for j := range c.skills[i].Checklist {
			if c.skills[i].Checklist[j].ID == itemID {
				c.skills[i].Checklist[j].Completed = !c.skills[i].Checklist[j].Completed
				return true
			}
		}
	}
	return false
}

// AppendTeachingEval records a scored self-explanation on the skill.
// Evaluations are append-only.
func (c *Collection) AppendTeachingEval(id string, eval TeachingEvaluation) bool {
	for i := range c.skills {
		if c.skills[i].ID == id {
			if eval.ID == "" {
				eval.ID = uuid.NewString()
			}
			if eval.CreatedAt.IsZero() {
				eval.CreatedAt = time.Now().UTC()
			}
			c.skills[i].TeachingEvals = append(c.skills[i].TeachingEvals, eval)
			return true
		}
	}
	return false
}

// All returns the skills in insertion order.
func (c *Collection) All() []Skill {
	return slices.Clone(c.skills)
}

// Len returns the number of skills.
func (c *Collection) Len() int {
	return len(c.skills)
}

// Match finds a skill by name. The match is case-insensitive and
// substring-tolerant in both directions, so "Docker" matches an entry
// named "Docker Compose" and vice versa. Exact matches win over
// substring matches.
func (c *Collection) Match(name string) (Skill, bool) {
	want := normalize(name)
	if want == "" {
		return Skill{}, false
	}
	if s, ok := c.byName(name); ok {
		return *s, true
	}
	for i := range c.skills {
		have := normalize(c.skills[i].Name)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return c.skills[i], true
		}
	}
	return Skill{}, false
}

// byName returns the skill with an exact case-insensitive name match.
func (c *Collection) byName(name string) (*Skill, bool) {
	want := normalize(name)
	for i := range c.skills {
		if normalize(c.skills[i].Name) == want {
			return &c.skills[i], true
		}
	}
	return nil, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
