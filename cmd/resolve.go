package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <skill>",
	Short: "Show a skill's prerequisites and metadata",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		name := strings.Join(args, " ")
		rec := env.resolver.Resolve(cmd.Context(), name, env.userContext())

		fmt.Printf("%s  [%s]\n", rec.SkillName, rec.Source)
		if rec.Description != "" {
			fmt.Println(rec.Description)
		}
		fmt.Printf("Difficulty:      %d/10\n", rec.Difficulty)
		fmt.Printf("Estimated hours: %.0f\n", rec.EstimatedHours)
		fmt.Printf("Category:        %s\n", rec.Category)

		if len(rec.Dependencies) == 0 {
			fmt.Println("No prerequisites.")
		} else {
			fmt.Println("Prerequisites:")
			for _, dep := range rec.Dependencies {
				fmt.Printf("  - %s\n", dep)
			}
		}
		if len(rec.Enables) > 0 {
			fmt.Printf("Enables: %s\n", strings.Join(rec.Enables, ", "))
		}
		return nil
	},
}
