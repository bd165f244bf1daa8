// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mallnav/core"
)

// TestConcurrentAddEdgeAndRead mixes writers and readers on one graph.
func TestConcurrentAddEdgeAndRead(t *testing.T) {
	g := core.NewMixedGraph()
	require.NoError(t, g.AddVertex("Hub"))

	const num = 200
	var wg sync.WaitGroup
	wg.Add(2 * num)
	errs := make(chan error, num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			if _, err := g.AddEdge("Hub", fmt.Sprintf("V%d", id), float64(id)); err != nil {
				errs <- err
			}
		}(i)
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors("Hub")
			_ = g.Edges()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	ids, err := g.NeighborIDs("Hub")
	require.NoError(t, err)
	require.Len(t, ids, num)
}
