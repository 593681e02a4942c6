// Package decimal formats exact integer ratios as fixed-point strings.
//
// Power indices are ratios of integer counts (swings over 2^(n-1),
// pivotal permutations over n!). Formatting the exact rational instead of a
// float64 quotient keeps the last digit stable: halves round away from zero,
// so 1/128 prints as 0.007813 rather than the banker's 0.007812.
package decimal

import "math/big"

// Places is the number of fractional digits every index value carries.
const Places = 6

// Ratio formats num/den with Places fractional digits. den must be non-zero.
func Ratio(num, den uint64) string {
	r := new(big.Rat).SetFrac(
		new(big.Int).SetUint64(num),
		new(big.Int).SetUint64(den),
	)

	return r.FloatString(Places)
}

// Ratios formats every nums[i]/den.
func Ratios(nums []uint64, den uint64) []string {
	out := make([]string, len(nums))
	for i, v := range nums {
		out[i] = Ratio(v, den)
	}

	return out
}
