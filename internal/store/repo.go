package store

import (
	"context"
	"time"

	"github.com/mkurien/skillpath/internal/skills"
)

// SkillRepo persists the user's skill collection.
type SkillRepo interface {
	// LoadAll returns every stored skill, including checklist items
	// and teaching evaluations, in creation order.
	LoadAll(ctx context.Context) ([]skills.Skill, error)

	// Insert stores a new skill.
	Insert(ctx context.Context, s skills.Skill) error

	// SetProficiency updates a skill's proficiency tier.
	SetProficiency(ctx context.Context, id string, p skills.Proficiency) error

	// Delete removes a skill and its child rows.
	Delete(ctx context.Context, id string) error

	// InsertChecklistItem appends one checklist entry.
	InsertChecklistItem(ctx context.Context, skillID string, item skills.ChecklistItem) error

	// SetChecklistItemCompleted flips a checklist entry's flag.
	SetChecklistItemCompleted(ctx context.Context, itemID string, completed bool) error

	// AppendTeachingEval records a scored self-explanation.
	AppendTeachingEval(ctx context.Context, skillID string, eval skills.TeachingEvaluation) error

	// DeleteAll wipes the collection.
	DeleteAll(ctx context.Context) error
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStats aggregates LLM events by purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM events by model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)

	// LLMUsageByPurpose returns per-purpose token and latency totals.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel returns per-model token totals.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
