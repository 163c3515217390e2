package skillgraph

import (
	"bytes"
	_ "embed"
	"fmt"
)

// starterSeed is the built-in programming skill graph, used when no
// custom seed file is supplied.
//
//go:embed seed.json
var starterSeed []byte

// Default builds the graph from the embedded starter seed.
func Default() (*Graph, error) {
	g, err := Load(bytes.NewReader(starterSeed))
	if err != nil {
		return nil, fmt.Errorf("load embedded seed: %w", err)
	}
	return g, nil
}
