package cmd

import (
	"fmt"
	"strings"

	"github.com/ndthanh/studycoach/internal/skillgraph"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill graph",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		graph := svc.Graph()

		var skills []skillgraph.Skill
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			skills = graph.ByCategory(category)
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for category %q", category)
			}
		} else {
			skills = graph.TopologicalOrder()
		}

		fmt.Printf("%-24s  %-36s  %-16s  %10s  %s\n",
			"ID", "Name", "Category", "Complexity", "Requires")
		fmt.Println(strings.Repeat("─", 110))

		for _, s := range skills {
			var reqs []string
			for _, p := range graph.PrerequisitesOf(s.ID) {
				reqs = append(reqs, p.Skill.ID)
			}
			fmt.Printf("%-24s  %-36s  %-16s  %10d  %s\n",
				s.ID, s.Name, s.Category, s.Complexity, strings.Join(reqs, ", "))
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show one skill with its mastery and review state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		s, err := svc.Graph().Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\ncategory: %s, complexity: %d/10\n",
			s.Name, s.ID, s.Category, s.Complexity)

		rec, err := svc.GetMastery(ctx, userID(cmd), s.ID)
		if err != nil {
			return err
		}
		fmt.Printf("mastery: %.1f%% (%d/%d correct)\n",
			rec.Mastery*100, rec.Correct, rec.Attempts)

		card, err := svc.GetCard(ctx, userID(cmd), s.ID)
		if err == nil {
			fmt.Printf("next review: %s (state %s, %d reps, %d lapses)\n",
				card.Due.Format("2006-01-02"), card.State, card.Reps, card.Lapses)
		} else {
			fmt.Println("next review: never reviewed")
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("category", "", "Filter by category (e.g. data-structures)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
}
