// Package discover asks the text-generation backend for complementary
// skills the user is missing, with tolerant parsing and a heuristic
// text scraper as the final fallback. Upstream failure yields an empty
// list, never an error.
package discover

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mkurien/skillpath/internal/llm"
	"github.com/mkurien/skillpath/internal/skills"
)

// MaxSuggestions caps the suggestion list.
const MaxSuggestions = 5

// Confidence is the suggested-skill confidence tier. Values outside the
// enum are coerced to ConfidenceMedium on parse.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Suggestion is one missing-skill suggestion in wire form.
type Suggestion struct {
	Name       string     `json:"name"`
	Reason     string     `json:"reason"`
	Confidence Confidence `json:"confidence"`
	Category   string     `json:"category"`
}

const suggestSystemPrompt = `You are a career development advisor. Suggest complementary skills worth learning next. Respond with a JSON array only, no prose. Each element must have exactly these keys: name (string), reason (string), confidence ("high", "medium", or "low"), category (string).`

// Service generates missing-skill suggestions.
type Service struct {
	provider llm.Provider
	logger   *slog.Logger
}

// New creates a discovery Service.
func New(provider llm.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, logger: logger}
}

// Suggest returns up to MaxSuggestions skills complementary to the
// given skill for this user. On any upstream or parse failure the
// result degrades toward empty rather than erroring.
func (s *Service) Suggest(ctx context.Context, skillName string, uc skills.UserContext) []Suggestion {
	ctx = llm.WithPurpose(ctx, "skill-discovery")

	req := llm.Request{
		System: suggestSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSuggestPrompt(skillName, uc)},
		},
		MaxTokens:   800,
		Temperature: 0.3,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		s.logger.Warn("skill discovery failed", "skill", skillName, "error", err)
		return []Suggestion{}
	}

	return ParseSuggestions(string(resp.Content))
}

// ParseSuggestions extracts a suggestion list from free-form generator
// output: first a bracketed JSON array, then a line-based scrape of
// bulleted or numbered skill mentions. Entries without a string name
// are dropped; out-of-enum confidence is coerced to medium; the list is
// capped at MaxSuggestions.
func ParseSuggestions(content string) []Suggestion {
	if arr, ok := llm.ExtractJSONArray(content); ok {
		if out := parseSuggestionArray(arr); len(out) > 0 {
			return out
		}
	}
	return scrapeSuggestions(content)
}

func parseSuggestionArray(arr string) []Suggestion {
	var raw []map[string]any
	if err := json.Unmarshal([]byte(arr), &raw); err != nil {
		return nil
	}

	out := make([]Suggestion, 0, len(raw))
	for _, item := range raw {
		name, ok := item["name"].(string)
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		sug := Suggestion{
			Name:       strings.TrimSpace(name),
			Confidence: coerceConfidence(item["confidence"]),
		}
		if r, ok := item["reason"].(string); ok {
			sug.Reason = strings.TrimSpace(r)
		}
		if c, ok := item["category"].(string); ok {
			sug.Category = strings.TrimSpace(c)
		}
		if sug.Category == "" {
			sug.Category = "general"
		}
		out = append(out, sug)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

// scrapeSuggestions is the last-resort parser: collect short bulleted
// or numbered lines as skill names.
func scrapeSuggestions(content string) []Suggestion {
	var out []Suggestion
	for _, line := range strings.Split(content, "\n") {
		name, ok := scrapeLine(line)
		if !ok {
			continue
		}
		out = append(out, Suggestion{
			Name:       name,
			Reason:     "Mentioned as a complementary skill.",
			Confidence: ConfidenceLow,
			Category:   "general",
		})
		if len(out) == MaxSuggestions {
			break
		}
	}
	if out == nil {
		return []Suggestion{}
	}
	return out
}

// scrapeLine extracts a skill name from a line like "- Docker",
// "* Docker: container runtime", or "1. Docker".
func scrapeLine(line string) (string, bool) {
	t := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(t, "- "), strings.HasPrefix(t, "* "):
		t = t[2:]
	case len(t) > 2 && t[0] >= '1' && t[0] <= '9' && (t[1] == '.' || t[1] == ')'):
		t = t[2:]
	default:
		return "", false
	}
	// Keep only the name portion if a rationale follows.
	if i := strings.IndexAny(t, ":("); i > 0 {
		t = t[:i]
	}
	if i := strings.Index(t, " - "); i > 0 {
		t = t[:i]
	}
	t = strings.TrimSpace(t)
	if t == "" || len(t) > 60 {
		return "", false
	}
	return t, true
}

func coerceConfidence(v any) Confidence {
	s, _ := v.(string)
	switch Confidence(strings.ToLower(strings.TrimSpace(s))) {
	case ConfidenceHigh:
		return ConfidenceHigh
	case ConfidenceLow:
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}

func buildSuggestPrompt(skillName string, uc skills.UserContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest up to %d skills that complement %s.\n", MaxSuggestions, strings.TrimSpace(skillName))

	if uc.CurrentRole != "" {
		fmt.Fprintf(&b, "The learner works as a %s.\n", uc.CurrentRole)
	}
	if uc.YearsOfExperience > 0 {
		fmt.Fprintf(&b, "They have %d years of experience.\n", uc.YearsOfExperience)
	}
	if len(uc.ExistingSkills) > 0 {
		fmt.Fprintf(&b, "They already know: %s. Do not suggest these.\n", strings.Join(uc.ExistingSkills, ", "))
	}
	if uc.Industry != "" {
		fmt.Fprintf(&b, "Industry: %s\n", uc.Industry)
	}

	b.WriteString("\nReturn the JSON array only.")
	return b.String()
}
