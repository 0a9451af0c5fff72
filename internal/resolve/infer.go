package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mkurien/skillpath/internal/llm"
	"github.com/mkurien/skillpath/internal/skills"
)

// Defaults applied when remote inference fails or returns fields that
// can't be coerced.
const (
	defaultDifficulty = 5
	defaultHours      = 20
	defaultCategory   = "general"
)

const inferSystemPrompt = `You are a skill dependency analyst. Given a skill, identify its prerequisite skills, the skills it unlocks, how hard it is to learn, and how long it takes. Respond with a single JSON object only, no prose, using exactly these keys: dependencies (array of strings, at most 4), description (string), difficulty (integer 1-10), estimatedHours (number), enables (array of strings), category (string).`

// InferConfig tunes the remote inference request.
type InferConfig struct {
	// Temperature is kept low: dependency analysis should be as
	// deterministic as a generative backend allows.
	Temperature float64
	MaxTokens   int
}

// DefaultInferConfig returns the standard inference settings.
func DefaultInferConfig() InferConfig {
	return InferConfig{
		Temperature: 0.3,
		MaxTokens:   900,
	}
}

// Inferrer asks a text-generation backend for a dependency record.
// It never fails: any transport or parse error degrades to a valid
// default record so resolution stays available.
type Inferrer struct {
	provider llm.Provider
	cfg      InferConfig
	logger   *slog.Logger
}

// NewInferrer creates an Inferrer backed by the given provider.
func NewInferrer(provider llm.Provider, cfg InferConfig, logger *slog.Logger) *Inferrer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inferrer{provider: provider, cfg: cfg, logger: logger}
}

// rawAnalysis is the LLM response before coercion. Fields are loosely
// typed because the generator is not contractually bound to emit valid
// shapes, let alone valid JSON.
type rawAnalysis struct {
	Dependencies   any `json:"dependencies"`
	Description    any `json:"description"`
	Difficulty     any `json:"difficulty"`
	EstimatedHours any `json:"estimatedHours"`
	Enables        any `json:"enables"`
	Category       any `json:"category"`
}

// Infer resolves a dependency record for an unknown skill name via the
// remote backend. The returned record is always valid.
func (inf *Inferrer) Infer(ctx context.Context, name string, uc skills.UserContext) Record {
	ctx = llm.WithPurpose(ctx, "dependency-analysis")

	req := llm.Request{
		System: inferSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildInferPrompt(name, uc)},
		},
		MaxTokens:   inf.cfg.MaxTokens,
		Temperature: inf.cfg.Temperature,
	}

	resp, err := inf.provider.Generate(ctx, req)
	if err != nil {
		inf.logger.Warn("dependency inference failed, using defaults",
			"skill", name, "error", err)
		return defaultRecord(name)
	}

	return CoerceAnalysis(name, string(resp.Content))
}

// CoerceAnalysis extracts a JSON object from free-form generator output
// and coerces each field individually, defaulting anything malformed.
// Exported because the analysis proxy reuses it for custom prompts.
func CoerceAnalysis(name, content string) Record {
	jsonStr, ok := llm.ExtractJSONObject(content)
	if !ok {
		// No brace-delimited block; try the full text as a last resort.
		jsonStr = content
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return defaultRecord(name)
	}

	now := time.Now().UTC()
	rec := Record{
		SkillName:      strings.TrimSpace(name),
		Dependencies:   toStringList(raw.Dependencies),
		Description:    toStringOr(raw.Description, fmt.Sprintf("Learn %s to expand your skill set.", strings.TrimSpace(name))),
		Difficulty:     toIntOr(raw.Difficulty, defaultDifficulty),
		EstimatedHours: toFloatOr(raw.EstimatedHours, defaultHours),
		Enables:        toStringList(raw.Enables),
		Category:       toStringOr(raw.Category, defaultCategory),
		Source:         SourceRemote,
		ResolvedAt:     &now,
	}
	rec.Clamp()
	return rec
}

// defaultRecord is the degraded-but-valid fallback for failed inference.
func defaultRecord(name string) Record {
	now := time.Now().UTC()
	rec := Record{
		SkillName:      strings.TrimSpace(name),
		Dependencies:   []string{},
		Description:    fmt.Sprintf("Learn %s to expand your skill set.", strings.TrimSpace(name)),
		Difficulty:     defaultDifficulty,
		EstimatedHours: defaultHours,
		Enables:        []string{},
		Category:       defaultCategory,
		Source:         SourceRemote,
		ResolvedAt:     &now,
	}
	rec.Clamp()
	return rec
}

func buildInferPrompt(name string, uc skills.UserContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the skill: %s\n", strings.TrimSpace(name))

	if uc.YearsOfExperience > 0 {
		fmt.Fprintf(&b, "The learner has %d years of professional experience.\n", uc.YearsOfExperience)
	}
	if uc.CurrentRole != "" {
		fmt.Fprintf(&b, "Current role: %s\n", uc.CurrentRole)
	}
	if len(uc.ExistingSkills) > 0 {
		fmt.Fprintf(&b, "Skills they already have: %s\n", strings.Join(uc.ExistingSkills, ", "))
	}
	if uc.Industry != "" {
		fmt.Fprintf(&b, "Industry: %s\n", uc.Industry)
	}

	b.WriteString("\nTailor the description to this learner. Return the JSON object only.")
	return b.String()
}

// toStringList accepts only an array of strings; anything else becomes
// an empty list. Non-string elements are dropped, entries are trimmed.
func toStringList(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toStringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	return fallback
}

func toIntOr(v any, fallback int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		var i int
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%d", &i); err == nil {
			return i
		}
	}
	return fallback
}

func toFloatOr(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%g", &f); err == nil {
			return f
		}
	}
	return fallback
}
