package game

import (
	"math/bits"
	"strconv"
	"strings"
)

// Coalition is a set of players encoded as a bitmask: bit i set ⇔ player i
// is a member. The zero value is the empty coalition.
type Coalition uint64

// Empty is the coalition with no members.
const Empty Coalition = 0

// Grand returns the coalition {0, …, n-1}.
func Grand(n int) Coalition {
	if n >= 64 {
		return ^Coalition(0)
	}

	return Coalition(1)<<uint(n) - 1
}

// Of builds a coalition from explicit player ordinals.
func Of(players ...int) Coalition {
	var c Coalition
	for _, p := range players {
		c = c.With(p)
	}

	return c
}

// Has reports whether player i is a member.
func (c Coalition) Has(i int) bool { return c&(1<<uint(i)) != 0 }

// With returns c ∪ {i}.
func (c Coalition) With(i int) Coalition { return c | 1<<uint(i) }

// Without returns c \ {i}.
func (c Coalition) Without(i int) Coalition { return c &^ (1 << uint(i)) }

// Len returns the number of members.
func (c Coalition) Len() int { return bits.OnesCount64(uint64(c)) }

// SubsetOf reports whether every member of c is also a member of o.
func (c Coalition) SubsetOf(o Coalition) bool { return c&^o == 0 }

// Players lists the members in ascending order.
func (c Coalition) Players() []int {
	out := make([]int, 0, c.Len())
	for m := uint64(c); m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}

	return out
}

// String renders the coalition as "{0,2,5}".
func (c Coalition) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for idx, p := range c.Players() {
		if idx > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteByte('}')

	return sb.String()
}
