package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkurien/skillpath/internal/skills"
	"github.com/mkurien/skillpath/internal/teachback"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage your tracked skills",
}

var skillAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Start tracking a skill",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		tier, _ := cmd.Flags().GetString("proficiency")
		p, err := skills.ParseProficiency(tier)
		if err != nil {
			return err
		}

		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		s, added := env.col.Add(name, p)
		if !added {
			fmt.Printf("Already tracking %q.\n", name)
			return nil
		}
		if err := env.store.SkillRepo().Insert(cmd.Context(), s); err != nil {
			return fmt.Errorf("save skill: %w", err)
		}
		fmt.Printf("Tracking %s (%s).\n", s.Name, s.Proficiency.Label())
		return nil
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		all := env.col.All()
		if len(all) == 0 {
			fmt.Println("No skills tracked yet. Add one with 'skillpath skill add <name>'.")
			return nil
		}

		fmt.Printf("%-30s  %-14s  %-9s  %s\n", "Name", "Proficiency", "Checklist", "Evals")
		fmt.Println(strings.Repeat("─", 68))
		for _, s := range all {
			done := 0
			for _, item := range s.Checklist {
				if item.Completed {
					done++
				}
			}
			name := s.Name
			if len(name) > 30 {
				name = name[:27] + "..."
			}
			fmt.Printf("%-30s  %-14s  %4d/%-4d  %d\n",
				name, s.Proficiency.Label(), done, len(s.Checklist), len(s.TeachingEvals))
		}
		fmt.Printf("\n%d skills\n", len(all))
		return nil
	},
}

var skillRateCmd = &cobra.Command{
	Use:   "rate <name> <proficiency>",
	Short: "Set a skill's proficiency tier",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args[:len(args)-1], " ")
		p, err := skills.ParseProficiency(args[len(args)-1])
		if err != nil {
			return err
		}

		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		s, err := env.findSkill(name)
		if err != nil {
			return err
		}
		env.col.Rate(s.ID, p)
		if err := env.store.SkillRepo().SetProficiency(cmd.Context(), s.ID, p); err != nil {
			return fmt.Errorf("save proficiency: %w", err)
		}
		fmt.Printf("%s is now %s.\n", s.Name, p.Label())
		return nil
	},
}

var skillRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Stop tracking a skill",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		s, err := env.findSkill(strings.Join(args, " "))
		if err != nil {
			return err
		}
		env.col.Remove(s.ID)
		if err := env.store.SkillRepo().Delete(cmd.Context(), s.ID); err != nil {
			return fmt.Errorf("delete skill: %w", err)
		}
		fmt.Printf("Removed %s.\n", s.Name)
		return nil
	},
}

var skillChecklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Manage a skill's self-assessment checklist",
}

var skillChecklistAddCmd = &cobra.Command{
	Use:   "add <name> <item text>",
	Short: "Add a checklist item to a skill",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		s, err := env.findSkill(args[0])
		if err != nil {
			return err
		}
		item, ok := env.col.AddChecklistItem(s.ID, strings.Join(args[1:], " "))
		if !ok {
			return fmt.Errorf("could not add checklist item to %q", s.Name)
		}
		if err := env.store.SkillRepo().InsertChecklistItem(cmd.Context(), s.ID, item); err != nil {
			return fmt.Errorf("save checklist item: %w", err)
		}
		fmt.Printf("Added to %s: %s\n", s.Name, item.Text)
		return nil
	},
}

var skillChecklistToggleCmd = &cobra.Command{
	Use:   "toggle <name> <item text>",
	Short: "Flip a checklist item between done and not done",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		s, err := env.findSkill(args[0])
		if err != nil {
			return err
		}
		item, err := findChecklistItem(s, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		if !env.col.ToggleChecklistItem(s.ID, item.ID) {
			return fmt.Errorf("could not update checklist item on %q", s.Name)
		}
		completed := !item.Completed
		if err := env.store.SkillRepo().SetChecklistItemCompleted(cmd.Context(), item.ID, completed); err != nil {
			return fmt.Errorf("save checklist item: %w", err)
		}
		if completed {
			fmt.Printf("Done: %s\n", item.Text)
		} else {
			fmt.Printf("Not done: %s\n", item.Text)
		}
		return nil
	},
}

// findChecklistItem matches an item by exact text first, then by a
// unique case-insensitive substring.
func findChecklistItem(s skills.Skill, text string) (skills.ChecklistItem, error) {
	needle := strings.ToLower(strings.TrimSpace(text))
	var matches []skills.ChecklistItem
	for _, item := range s.Checklist {
		if strings.ToLower(item.Text) == needle {
			return item, nil
		}
		if strings.Contains(strings.ToLower(item.Text), needle) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return skills.ChecklistItem{}, fmt.Errorf("no checklist item on %q matches %q", s.Name, text)
	default:
		return skills.ChecklistItem{}, fmt.Errorf("%q matches %d checklist items on %q, be more specific", text, len(matches), s.Name)
	}
}

var skillTeachCmd = &cobra.Command{
	Use:   "teach <name> <explanation>",
	Short: "Explain a skill in your own words and get it scored",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		s, err := env.findSkill(args[0])
		if err != nil {
			return err
		}
		explanation := strings.Join(args[1:], " ")

		eval := teachback.New(env.provider, env.logger).Evaluate(cmd.Context(), s.Name, explanation)
		env.col.AppendTeachingEval(s.ID, eval)
		// The collection assigns the ID and timestamp; persist its copy.
		updated, _ := env.col.Get(s.ID)
		stored := updated.TeachingEvals[len(updated.TeachingEvals)-1]
		if err := env.store.SkillRepo().AppendTeachingEval(cmd.Context(), s.ID, stored); err != nil {
			return fmt.Errorf("save evaluation: %w", err)
		}

		fmt.Printf("Score: %d/100\n", eval.Score)
		if eval.Feedback != "" {
			fmt.Println(eval.Feedback)
		}
		return nil
	},
}

func init() {
	tiers := make([]string, 0, 4)
	for _, p := range skills.AllProficiencies() {
		tiers = append(tiers, p.String())
	}
	skillAddCmd.Flags().StringP("proficiency", "p", skills.WantToLearn.String(),
		"Initial tier: "+strings.Join(tiers, ", "))

	skillChecklistCmd.AddCommand(skillChecklistAddCmd)
	skillChecklistCmd.AddCommand(skillChecklistToggleCmd)

	skillCmd.AddCommand(skillAddCmd)
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillRateCmd)
	skillCmd.AddCommand(skillRemoveCmd)
	skillCmd.AddCommand(skillChecklistCmd)
	skillCmd.AddCommand(skillTeachCmd)
}
