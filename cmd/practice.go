package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <skill-id> <correct|incorrect>",
	Short: "Record a practice attempt and update mastery",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var correct bool
		switch args[1] {
		case "correct":
			correct = true
		case "incorrect":
			correct = false
		default:
			return fmt.Errorf("outcome must be correct or incorrect, got %q", args[1])
		}

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := svc.UpdateMastery(cmd.Context(), userID(cmd), args[0], correct)
		if err != nil {
			return err
		}

		fmt.Printf("%s: mastery %.1f%% (%d/%d correct)\n",
			rec.SkillID, rec.Mastery*100, rec.Correct, rec.Attempts)
		return nil
	},
}
