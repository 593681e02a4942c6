package powerindex

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/votepower/game"
)

// Key identifies a (kind, game) pair: a BLAKE2b-256 digest over the kind,
// n, k, every weight in row-major order and every quota, each written as a
// fixed-width big-endian integer. Two games share a Key only if they are
// identical, so cached results never cross inputs.
type Key [blake2b.Size256]byte

// KeyOf computes the cache key of g under kind.
func KeyOf(g *game.Game, kind Kind) Key {
	// blake2b.New256 only fails for oversized keys; nil is always accepted.
	h, _ := blake2b.New256(nil)

	var buf [8]byte
	put := func(v uint64) {
		binary.BigEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	put(uint64(kind))
	put(uint64(g.N()))
	put(uint64(g.K()))
	var i, j int
	for i = 0; i < g.N(); i++ {
		for j = 0; j < g.K(); j++ {
			put(uint64(g.Weight(i, j)))
		}
	}
	for j = 0; j < g.K(); j++ {
		put(uint64(g.Quota(j)))
	}

	var k Key
	copy(k[:], h.Sum(nil))

	return k
}

// String returns the hex form of the key.
func (k Key) String() string { return hex.EncodeToString(k[:]) }
