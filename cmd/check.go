package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkurien/skillpath/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check your skill ratings for missing or weak prerequisites",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		warnings := check.New(env.resolver).Check(cmd.Context(), env.col, env.userContext())
		if len(warnings) == 0 {
			fmt.Println("No consistency warnings. Your ratings look coherent.")
			return nil
		}

		for _, w := range warnings {
			marker := "!"
			if w.Severity == check.SeverityLow {
				marker = "·"
			}
			fmt.Printf("%s [%s] %s\n", marker, w.Severity, w.Message)
		}
		fmt.Printf("\n%d warnings\n", len(warnings))
		return nil
	},
}
