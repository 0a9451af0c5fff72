package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkurien/skillpath/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all tracked skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this deletes every tracked skill; re-run with --force to confirm")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.SkillRepo().DeleteAll(cmd.Context()); err != nil {
			return fmt.Errorf("delete skills: %w", err)
		}
		fmt.Println("All skills deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}
