package teachback

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mkurien/skillpath/internal/llm"
)

func TestEvaluate_ParsesScoreAndFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 82, "feedback": "Mention the scheduler."}`),
	})
	e := New(mock, nil)

	eval := e.Evaluate(context.Background(), "Kubernetes", "It runs containers across machines.")
	if eval.Score != 82 {
		t.Fatalf("expected score 82, got %d", eval.Score)
	}
	if eval.Feedback != "Mention the scheduler." {
		t.Fatalf("unexpected feedback: %q", eval.Feedback)
	}
	if eval.Explanation != "It runs containers across machines." {
		t.Fatal("explanation must be preserved on the evaluation")
	}
}

func TestEvaluate_ClampsScore(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score": 140, "feedback": "x"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"score": -5, "feedback": "x"}`)},
	)
	e := New(mock, nil)

	if got := e.Evaluate(context.Background(), "Go", "..."); got.Score != 100 {
		t.Fatalf("expected clamp to 100, got %d", got.Score)
	}
	if got := e.Evaluate(context.Background(), "Go", "..."); got.Score != 0 {
		t.Fatalf("expected clamp to 0, got %d", got.Score)
	}
}

func TestEvaluate_NeutralOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	e := New(mock, nil)

	eval := e.Evaluate(context.Background(), "Go", "channels are typed pipes")
	if eval.Score != 50 {
		t.Fatalf("expected neutral score, got %d", eval.Score)
	}
	if eval.Feedback == "" {
		t.Fatal("expected neutral feedback text")
	}
}

func TestEvaluate_NeutralOnMalformedContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Nice explanation, well done!"`),
	})
	e := New(mock, nil)

	eval := e.Evaluate(context.Background(), "Go", "...")
	if eval.Score != 50 {
		t.Fatalf("expected neutral score for non-JSON content, got %d", eval.Score)
	}
}
