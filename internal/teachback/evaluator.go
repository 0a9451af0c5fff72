// Package teachback scores a user's self-explanation of a skill — the
// "teach it back" check. Scores are advisory: a failed backend call
// degrades to a neutral score rather than an error.
package teachback

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mkurien/skillpath/internal/llm"
	"github.com/mkurien/skillpath/internal/skills"
)

const evalSystemPrompt = `You are a strict but fair technical examiner. The learner will explain a concept in their own words. Score the explanation for accuracy and depth. Respond with a JSON object only: {"score": integer 0-100, "feedback": string with one concrete improvement}.`

const (
	neutralScore    = 50
	neutralFeedback = "The explanation could not be evaluated this time. Try again with more detail."
)

// Evaluator scores self-explanations via the LLM provider.
type Evaluator struct {
	provider llm.Provider
	logger   *slog.Logger
}

// New creates an Evaluator.
func New(provider llm.Provider, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{provider: provider, logger: logger}
}

type rawEval struct {
	Score    any `json:"score"`
	Feedback any `json:"feedback"`
}

// Evaluate scores an explanation of skillName. It always returns a
// usable evaluation; backend failures produce the neutral default.
func (e *Evaluator) Evaluate(ctx context.Context, skillName, explanation string) skills.TeachingEvaluation {
	ctx = llm.WithPurpose(ctx, "teaching-eval")

	eval := skills.TeachingEvaluation{
		Explanation: explanation,
		Score:       neutralScore,
		Feedback:    neutralFeedback,
	}

	req := llm.Request{
		System: evalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Concept: %s\n\nExplanation:\n%s", skillName, explanation)},
		},
		MaxTokens:   500,
		Temperature: 0.2,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		e.logger.Warn("teaching evaluation failed, using neutral score",
			"skill", skillName, "error", err)
		return eval
	}

	jsonStr, ok := llm.ExtractJSONObject(string(resp.Content))
	if !ok {
		return eval
	}
	var raw rawEval
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return eval
	}

	if n, ok := raw.Score.(float64); ok {
		score := int(n)
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		eval.Score = score
	}
	if s, ok := raw.Feedback.(string); ok && strings.TrimSpace(s) != "" {
		eval.Feedback = strings.TrimSpace(s)
	}
	return eval
}
