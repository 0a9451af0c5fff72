package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkurien/skillpath/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend skills to learn next",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		recs := recommend.New(env.resolver).RecommendNext(cmd.Context(), env.col, env.userContext())
		if len(recs) == 0 {
			fmt.Println("Nothing to recommend yet. Track some skills first.")
			return nil
		}

		fmt.Printf("%-26s  %-12s  %-8s  %-4s  %s\n", "Skill", "Type", "Priority", "Diff", "Reason")
		fmt.Println(strings.Repeat("─", 96))
		for _, r := range recs {
			name := r.SkillName
			if len(name) > 26 {
				name = name[:23] + "..."
			}
			reason := r.Reason
			if len(reason) > 40 {
				reason = reason[:37] + "..."
			}
			fmt.Printf("%-26s  %-12s  %-8s  %4d  %s\n",
				name, r.Type, r.Priority, r.Difficulty, reason)
		}
		return nil
	},
}
