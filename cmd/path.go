package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkurien/skillpath/internal/recommend"
)

var pathCmd = &cobra.Command{
	Use:   "path <skill>",
	Short: "Build an ordered learning path toward a target skill",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		target := strings.Join(args, " ")
		steps := recommend.New(env.resolver).BuildLearningPath(cmd.Context(), target, env.col, env.userContext())

		totalHours := 0.0
		for i, step := range steps {
			marker := " "
			if step.IsTarget {
				marker = "*"
			}
			fmt.Printf("%2d. %s %s  (difficulty %d, ~%.0fh)\n",
				i+1, marker, step.SkillName, step.Difficulty, step.EstimatedHours)
			if step.Description != "" {
				fmt.Printf("       %s\n", step.Description)
			}
			totalHours += step.EstimatedHours
		}
		fmt.Printf("\n%d steps, roughly %.0f hours\n", len(steps), totalHours)
		return nil
	},
}
