// Package shapley computes the Shapley–Shubik value of a multi-dimensional
// weighted voting game.
//
// 🚀 What is it?
//
//	Players join a coalition one at a time in a uniformly random order. The
//	player whose arrival flips the running coalition from losing to winning
//	is pivotal. Player i's Shapley value is the fraction of the n! orders in
//	which i is pivotal. For a proper game the values sum to 1.
//
// ✨ Methods:
//
//   - Permutations (default): depth-first search over partial insertion
//     orders. When adding player i to the placed set `used` turns a losing
//     prefix into a winning one, i is pivotal for every order that starts
//     with some arrangement of `used` followed by i. Pivotality depends on
//     the set `used`, not its internal order, so the walker credits i with
//     (n-d-1)! orders (free arrangements of the rest) and does not descend.
//     A prefix that already wins ends the branch as well: with non-negative
//     weights no later arrival can be pivotal.
//   - Subsets: sweeps all 2^n coalitions and credits each swing (S, i) with
//     |S|!·(n-|S|-1)! = (n-1)! / C(n-1, |S|) orders. Same counts, predictable
//     running time.
//
// ⚙️ Usage:
//
//	res, err := shapley.Shapley(g,
//	    shapley.WithContext(ctx),
//	    shapley.WithMethod(shapley.Permutations),
//	)
//	fmt.Println(res.Values) // ["0.333333" "0.333333" "0.333333"]
//
// Performance:
//
//   - Permutations: exponential. Each ordered losing prefix is one node, so
//     the worst case (unanimity) visits Σ n!/(n-d)! nodes; pruning keeps
//     games with early pivots far below n!. Each node costs O(n·k).
//   - Subsets:      O(2^n · n · k) regardless of the game; the better choice
//     once n grows past a dozen players.
//   - Memory:       O(n + k) plus the O(n) recursion stack.
//
// Every order is accounted for exactly once, so Result.Permutations == n!.
// Orders in which nobody is pivotal (a game the grand coalition cannot win)
// are reported by Result.Unpivoted.
package shapley
