package banzhaf_test

import (
	"fmt"

	"github.com/katalvlaran/votepower/banzhaf"
	"github.com/katalvlaran/votepower/game"
)

// ExampleBanzhaf computes the index of the weighted majority game
// [4; 3, 2, 1, 1]. The largest player swings in six of the eight coalitions
// that exclude it; each small player swings in two.
func ExampleBanzhaf() {
	g, err := game.New(4, 1, [][]int64{{3}, {2}, {1}, {1}}, []int64{4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := banzhaf.Banzhaf(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, v := range res.Normalized {
		fmt.Printf("Player %d: raw=%d normalized=%s\n", i+1, res.Raw[i], v)
	}

	// Output:
	// Player 1: raw=6 normalized=0.750000
	// Player 2: raw=2 normalized=0.250000
	// Player 3: raw=2 normalized=0.250000
	// Player 4: raw=2 normalized=0.250000
}
