package cmd

import (
	"fmt"
	"os"

	"github.com/ndthanh/studycoach/internal/skillgraph"
	"github.com/ndthanh/studycoach/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a skill graph into the database",
	Long: "Seed replaces the stored skill graph with the embedded starter curriculum,\n" +
		"or with a custom JSON seed file given via --file.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := loadSeedGraph(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.GraphRepo().Replace(cmd.Context(), graph); err != nil {
			return err
		}

		fmt.Printf("Seeded %d skills across %d categories.\n",
			graph.Len(), len(graph.Categories()))
		return nil
	},
}

// loadSeedGraph reads the seed from --file when given, otherwise the
// embedded starter curriculum.
func loadSeedGraph(cmd *cobra.Command) (*skillgraph.Graph, error) {
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		return skillgraph.Default()
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	graph, err := skillgraph.Load(f)
	if err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return graph, nil
}

func init() {
	seedCmd.Flags().String("file", "", "Path to a skill graph seed JSON file")
}
