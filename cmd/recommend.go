package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <target-skill-id>",
	Short: "Recommend what to practice next toward a target skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := svc.Recommend(cmd.Context(), userID(cmd), args[0])
		if err != nil {
			return err
		}

		if rec.Reason == "ready" {
			fmt.Printf("Practice %s — prerequisites are solid.\n", rec.SkillID)
			return nil
		}
		fmt.Printf("Practice %s first (%s).\n", rec.SkillID, rec.Reason)
		fmt.Printf("Path: %s\n", strings.Join(rec.Chain, " -> "))
		return nil
	},
}
