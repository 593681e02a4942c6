// Package votepower measures how much voting power each player holds in a
// weighted voting game with one or more resolutions.
//
// A game has n players and k resolutions. Player i carries a non-negative
// weight per resolution, and resolution j has a quota. A coalition wins
// when, for every resolution, its members' weights reach the quota; a
// multi-resolution game is therefore the intersection of k ordinary
// weighted majority games (double majorities, bicameral chambers).
//
// Two classic indices are provided:
//
//	Banzhaf   share of coalitions a player swings from losing to winning,
//	          normalized by 2^(n-1) swing opportunities.
//	Shapley   share of the n! arrival orders in which a player is pivotal.
//
// Both are exact: counts are integers and values are formatted from exact
// rationals with six fractional digits.
//
// Packages:
//
//	game/            Game, Coalition, Wins, validation and sentinels
//	factorial/       memoized n! for n ≤ 20
//	banzhaf/         coalition enumeration, Options, Result
//	shapley/         pruned order search or subset sweep, Options, Result
//	powerindex/      Kind dispatcher and a caching, request-collapsing Engine
//	cmd/votepower/   command-line front end (compute, batch)
//
// Quick example, two chambers and three players:
//
//	g, _ := game.New(3, 2, [][]int64{{1, 1}, {1, 0}, {0, 1}}, []int64{2, 1})
//	res, _ := powerindex.Compute(ctx, g, powerindex.Shapley)
//	// res.Values == ["0.500000" "0.500000" "0.000000"]
//
// Enumeration is exponential in n; games are capped at 20 players by
// default (30 for Banzhaf when raised explicitly).
//
//	go install github.com/katalvlaran/votepower/cmd/votepower@latest
package votepower
