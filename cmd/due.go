package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List reviews that are due now",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		due, err := svc.DueReviews(cmd.Context(), userID(cmd), time.Time{})
		if err != nil {
			return err
		}
		if len(due) == 0 {
			fmt.Println("Nothing due. Come back later.")
			return nil
		}

		now := time.Now()
		for _, c := range due {
			overdue := now.Sub(c.Due).Hours() / 24
			fmt.Printf("%-24s due %s (%.1f days overdue, %d reps, %d lapses)\n",
				c.SkillID, c.Due.Format("2006-01-02"), overdue, c.Reps, c.Lapses)
		}
		fmt.Printf("\n%d cards due\n", len(due))
		return nil
	},
}
