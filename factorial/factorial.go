// Package factorial provides a memoized factorial table for permutation
// counting.
//
// Shapley enumeration asks for (n-d-1)! at every pivotal prefix, over and
// over for the same handful of arguments; Cache answers repeated lookups in
// O(1) after the first computation.
//
// Results are exact uint64 values for x ≤ MaxExact (20! is the largest
// factorial below 2^64). Callers are expected to bound their arguments;
// larger x silently wraps around.
package factorial

// MaxExact is the largest argument whose factorial fits in a uint64.
const MaxExact = 20

// Cache memoizes factorials by argument. The zero value is not usable;
// construct one with NewCache. A Cache is not safe for concurrent use and is
// meant to live for the duration of a single computation.
type Cache struct {
	memo map[int]uint64
}

// NewCache returns an empty factorial cache.
func NewCache() *Cache {
	return &Cache{memo: make(map[int]uint64, MaxExact+1)}
}

// Of returns x!, with Of(x) == 1 for every x ≤ 1 and
// Of(x) == x·Of(x-1) otherwise.
func (c *Cache) Of(x int) uint64 {
	if x <= 1 {
		return 1
	}
	if v, ok := c.memo[x]; ok {
		return v
	}
	v := uint64(x) * c.Of(x-1)
	c.memo[x] = v

	return v
}

// Len reports how many distinct arguments have been memoized.
func (c *Cache) Len() int { return len(c.memo) }
