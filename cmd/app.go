package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkurien/skillpath/internal/llm"
	"github.com/mkurien/skillpath/internal/resolve"
	"github.com/mkurien/skillpath/internal/skills"
	"github.com/mkurien/skillpath/internal/store"
)

// appEnv bundles the dependencies most commands need: the open store,
// the loaded skill collection, and the resolver chain.
type appEnv struct {
	store    *store.Store
	col      *skills.Collection
	provider llm.Provider
	resolver *resolve.Resolver
	logger   *slog.Logger
}

// newAppEnv opens the store, loads the collection, and wires the LLM
// provider. Provider configuration failure is not fatal: the static
// table and pattern matcher still work, so commands degrade rather
// than refuse to run.
func newAppEnv(cmd *cobra.Command) (*appEnv, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	ctx := cmd.Context()
	logger := newLogger()

	stored, err := st.SkillRepo().LoadAll(ctx)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load skills: %w", err)
	}
	col := skills.NewCollection(stored...)

	env := &appEnv{
		store:  st,
		col:    col,
		logger: logger,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		logger.Warn("LLM provider not configured; inference disabled", "error", err)
		provider = llm.NewMockProvider()
	}
	env.provider = provider
	env.resolver = resolve.NewResolver(provider, logger)
	return env, nil
}

func (e *appEnv) Close() {
	e.store.Close()
}

// userContext assembles the personalization context from environment
// variables plus the meaningfully-held skills in the collection.
func (e *appEnv) userContext() skills.UserContext {
	uc := skills.UserContext{
		CurrentRole: os.Getenv("SKILLPATH_ROLE"),
		Industry:    os.Getenv("SKILLPATH_INDUSTRY"),
	}
	if y := os.Getenv("SKILLPATH_YEARS"); y != "" {
		if n, err := strconv.Atoi(y); err == nil && n >= 0 {
			uc.YearsOfExperience = n
		}
	}
	for _, s := range e.col.All() {
		if s.Proficiency.Meaningful() {
			uc.ExistingSkills = append(uc.ExistingSkills, s.Name)
		}
	}
	return uc
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("SKILLPATH_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// findSkill looks up a collection entry by fuzzy name and fails with a
// friendly error when nothing matches.
func (e *appEnv) findSkill(name string) (skills.Skill, error) {
	s, ok := e.col.Match(name)
	if !ok {
		return skills.Skill{}, fmt.Errorf("no tracked skill matches %q (try 'skillpath skill list')", name)
	}
	return s, nil
}
