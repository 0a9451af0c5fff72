package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mkurien/skillpath/internal/discover"
	"github.com/mkurien/skillpath/internal/llm"
	"github.com/mkurien/skillpath/internal/resolve"
	"github.com/mkurien/skillpath/internal/skills"
)

type analyzeRequest struct {
	SkillName   string              `json:"skillName"`
	Prompt      string              `json:"prompt,omitempty"`
	UserContext *skills.UserContext `json:"userContext,omitempty"`
}

type suggestionsResponse struct {
	Success     bool                  `json:"success"`
	Suggestions []discover.Suggestion `json:"suggestions"`
	SkillName   string                `json:"skillName"`
	UserContext *skills.UserContext   `json:"userContext,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze serves POST /api/v1/analyze. With a custom prompt it
// proxies the prompt to the provider and returns the coerced,
// schema-validated analysis object; without one it returns discovery
// suggestions for the named skill.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.SkillName = strings.TrimSpace(req.SkillName)
	if req.SkillName == "" {
		s.respondError(w, http.StatusBadRequest, "skillName is required")
		return
	}

	ctx := r.Context()
	var userCtx skills.UserContext
	if req.UserContext != nil {
		userCtx = *req.UserContext
	}

	if strings.TrimSpace(req.Prompt) != "" {
		s.analyzeWithPrompt(w, r, req)
		return
	}

	suggestions := s.discovery.Suggest(ctx, req.SkillName, userCtx)
	s.respondJSON(w, http.StatusOK, suggestionsResponse{
		Success:     true,
		Suggestions: suggestions,
		SkillName:   req.SkillName,
		UserContext: req.UserContext,
	})
}

// handleDependencies resolves the named skill through the layered
// resolver and returns its dependency record.
func (s *Server) handleDependencies(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		s.respondError(w, http.StatusBadRequest, "skill name is required")
		return
	}
	record := s.resolver.Resolve(r.Context(), name, skills.UserContext{})
	s.respondJSON(w, http.StatusOK, record)
}

func (s *Server) analyzeWithPrompt(w http.ResponseWriter, r *http.Request, req analyzeRequest) {
	ctx := llm.WithPurpose(r.Context(), "dependency-analysis")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      analysisSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: req.Prompt}},
		Schema:      analysisSchema,
		Temperature: 0.3,
		MaxTokens:   900,
	})
	if err != nil {
		s.logger.Error("analysis inference failed", "skill", req.SkillName, "error", err)
		s.respondError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	record := resolve.CoerceAnalysis(req.SkillName, string(resp.Content))
	s.respondJSON(w, http.StatusOK, record)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}

const analysisSystemPrompt = `You are a skill dependency analyst. Respond with a single JSON object and nothing else. The object must have the keys: dependencies (array of skill name strings), description (string), difficulty (integer 1-10), estimatedHours (integer), enables (array of skill name strings), category (string).`
