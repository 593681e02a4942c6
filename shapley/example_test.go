package shapley_test

import (
	"fmt"

	"github.com/katalvlaran/votepower/game"
	"github.com/katalvlaran/votepower/shapley"
)

// ExampleShapley computes Shapley values for a two-chamber rule: a bill
// needs 3 of 5 seats in chamber A and 2 of 3 seats in chamber B. Player 0
// holds most of chamber A, players 1 and 2 split chamber B.
func ExampleShapley() {
	g, err := game.New(3, 2,
		[][]int64{
			{3, 0},
			{1, 2},
			{1, 1},
		},
		[]int64{3, 2},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := shapley.Shapley(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, v := range res.Values {
		fmt.Printf("Player %d: %s (%d of %d orders)\n", i+1, v, res.Counts[i], res.Permutations)
	}

	// Output:
	// Player 1: 0.500000 (3 of 6 orders)
	// Player 2: 0.500000 (3 of 6 orders)
	// Player 3: 0.000000 (0 of 6 orders)
}
