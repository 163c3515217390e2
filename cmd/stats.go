package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/ndthanh/studycoach/internal/spacedrep"
	"github.com/spf13/cobra"
)

var (
	statsTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	statsLabelStyle = lipgloss.NewStyle().Faint(true).Width(18)
	statsWarnStyle  = lipgloss.NewStyle().Bold(true)
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := svc.Stats(cmd.Context(), userID(cmd))
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(statsTitleStyle.Render("Progress") + "\n")
		b.WriteString(statsLabelStyle.Render("Skills tracked") +
			fmt.Sprintf("%d / %d\n", stats.TrackedSkills, stats.TotalSkills))
		b.WriteString(statsLabelStyle.Render("Mastered") +
			fmt.Sprintf("%d\n", stats.MasteredSkills))
		b.WriteString(statsLabelStyle.Render("Average mastery") +
			fmt.Sprintf("%.1f%%\n", stats.AvgMastery*100))

		b.WriteString("\n" + statsTitleStyle.Render("Reviews") + "\n")
		b.WriteString(statsLabelStyle.Render("Cards") +
			fmt.Sprintf("%d\n", stats.TotalCards))
		due := fmt.Sprintf("%d", stats.DueCards)
		if stats.DueCards > 0 {
			due = statsWarnStyle.Render(due)
		}
		b.WriteString(statsLabelStyle.Render("Due now") + due + "\n")
		b.WriteString(statsLabelStyle.Render("Total reps") +
			fmt.Sprintf("%d\n", stats.TotalReps))
		b.WriteString(statsLabelStyle.Render("Lapses") +
			fmt.Sprintf("%d\n", stats.Lapses))

		for _, state := range []spacedrep.State{spacedrep.New, spacedrep.Learning, spacedrep.Review, spacedrep.Relearning} {
			if n := stats.ByState[state]; n > 0 {
				b.WriteString(statsLabelStyle.Render("  "+state.String()) +
					fmt.Sprintf("%d\n", n))
			}
		}

		fmt.Print(b.String())
		return nil
	},
}
