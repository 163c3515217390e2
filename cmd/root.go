// Package cmd implements the studycoach CLI.
package cmd

import (
	"fmt"

	"github.com/ndthanh/studycoach/internal/coach"
	"github.com/ndthanh/studycoach/internal/skillgraph"
	"github.com/ndthanh/studycoach/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studycoach",
	Short: "Adaptive learning coach for programming skills",
	Long: "Studycoach tracks skill mastery with Bayesian Knowledge Tracing, schedules\n" +
		"spaced-repetition reviews, and recommends what to practice next based on\n" +
		"the prerequisite graph.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYCOACH_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "Learner profile to operate on")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDYCOACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func userID(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		u = "default"
	}
	return u
}

// openService opens the store and wires a coach.Service around it.
// The caller must Close the returned store.
func openService(cmd *cobra.Command) (*coach.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}

	graph, err := loadGraph(cmd, st)
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	svc, err := coach.NewService(coach.Deps{
		Graph:       graph,
		Mastery:     st.MasteryRepo(),
		Cards:       st.CardRepo(),
		Logs:        st.ReviewLogRepo(),
		Predictions: st.PredictionRepo(),
	})
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return svc, st, nil
}

// loadGraph prefers the seeded graph in the store, falling back to the
// embedded starter curriculum.
func loadGraph(cmd *cobra.Command, st *store.Store) (*skillgraph.Graph, error) {
	ctx := cmd.Context()
	seeded, err := st.GraphRepo().IsSeeded(ctx)
	if err != nil {
		return nil, err
	}
	if seeded {
		g, err := st.GraphRepo().Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load stored skill graph: %w", err)
		}
		return g, nil
	}
	return skillgraph.Default()
}
