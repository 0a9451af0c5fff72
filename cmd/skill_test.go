package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkurien/skillpath/internal/skills"
	"github.com/mkurien/skillpath/internal/store"
)

// runCLI drives the real command tree against a throwaway database.
func runCLI(t *testing.T, db string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append(args, "--db", db))
	return rootCmd.ExecuteContext(context.Background())
}

func loadSkills(t *testing.T, db string) []skills.Skill {
	t.Helper()
	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	loaded, err := s.SkillRepo().LoadAll(context.Background())
	require.NoError(t, err)
	return loaded
}

func TestSkillChecklistToggle(t *testing.T) {
	t.Setenv("SKILLPATH_LLM_PROVIDER", "mock")
	db := filepath.Join(t.TempDir(), "skillpath.db")

	require.NoError(t, runCLI(t, db, "skill", "add", "Go"))
	require.NoError(t, runCLI(t, db, "skill", "checklist", "add", "Go", "Build a CLI tool"))
	require.NoError(t, runCLI(t, db, "skill", "checklist", "toggle", "Go", "cli tool"))

	loaded := loadSkills(t, db)
	require.Len(t, loaded, 1)
	require.Len(t, loaded[0].Checklist, 1)
	require.True(t, loaded[0].Checklist[0].Completed)

	// Toggling again flips it back.
	require.NoError(t, runCLI(t, db, "skill", "checklist", "toggle", "Go", "Build a CLI tool"))

	loaded = loadSkills(t, db)
	require.False(t, loaded[0].Checklist[0].Completed)
}

func TestSkillChecklistToggle_NoMatch(t *testing.T) {
	t.Setenv("SKILLPATH_LLM_PROVIDER", "mock")
	db := filepath.Join(t.TempDir(), "skillpath.db")

	require.NoError(t, runCLI(t, db, "skill", "add", "Go"))
	require.NoError(t, runCLI(t, db, "skill", "checklist", "add", "Go", "Read the standard library docs"))

	require.Error(t, runCLI(t, db, "skill", "checklist", "toggle", "Go", "nonexistent item"))

	loaded := loadSkills(t, db)
	require.False(t, loaded[0].Checklist[0].Completed)
}

func TestFindChecklistItem(t *testing.T) {
	s := skills.Skill{
		Name: "Go",
		Checklist: []skills.ChecklistItem{
			{ID: "a", Text: "Write a worker pool"},
			{ID: "b", Text: "Write a web server"},
		},
	}

	item, err := findChecklistItem(s, "write a web server")
	require.NoError(t, err)
	require.Equal(t, "b", item.ID)

	item, err = findChecklistItem(s, "worker")
	require.NoError(t, err)
	require.Equal(t, "a", item.ID)

	_, err = findChecklistItem(s, "write")
	require.Error(t, err)

	_, err = findChecklistItem(s, "deploy")
	require.Error(t, err)
}
