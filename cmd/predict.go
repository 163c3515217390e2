package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict <skill-id>",
	Short: "Predict how likely you are to struggle with a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		pred, err := svc.PredictStruggle(cmd.Context(), userID(cmd), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Struggle probability: %.0f%% (confidence %.0f%%)\n",
			pred.Probability*100, pred.Confidence*100)
		if pred.Action == "scaffold" {
			fmt.Println("Recommendation: break this skill down before attempting it" +
				" (try `studycoach lesson` with --scaffold).")
		} else {
			fmt.Println("Recommendation: go ahead and attempt it.")
		}
		fmt.Printf("Prediction ID: %s\n", pred.ID)
		return nil
	},
}

var outcomeCmd = &cobra.Command{
	Use:   "outcome <prediction-id> <struggled|fine>",
	Short: "Record how a predicted skill attempt actually went",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var struggled bool
		switch args[1] {
		case "struggled":
			struggled = true
		case "fine":
			struggled = false
		default:
			return fmt.Errorf("outcome must be struggled or fine, got %q", args[1])
		}

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := svc.RecordPredictionOutcome(cmd.Context(), args[0], struggled); err != nil {
			return err
		}
		fmt.Println("Outcome recorded.")
		return nil
	},
}

func init() {
	predictCmd.AddCommand(outcomeCmd)
}
