package cmd

import (
	"fmt"

	"github.com/ndthanh/studycoach/internal/spacedrep"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <skill-id> <again|hard|good|easy>",
	Short: "Grade a review and reschedule the card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, err := spacedrep.ParseRating(args[1])
		if err != nil {
			return err
		}

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		card, err := svc.SubmitReview(cmd.Context(), userID(cmd), args[0], rating)
		if err != nil {
			return err
		}

		fmt.Printf("%s: next review %s (interval %.1f days, state %s)\n",
			card.SkillID, card.Due.Format("2006-01-02"), card.ScheduledDays, card.State)
		return nil
	},
}
