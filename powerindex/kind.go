package powerindex

import (
	"fmt"
	"strings"
)

// Kind selects which power index to compute.
type Kind int

const (
	// Banzhaf is the normalized Banzhaf index.
	Banzhaf Kind = iota + 1

	// Shapley is the Shapley–Shubik value.
	Shapley
)

// Kinds lists every supported index in display order.
var Kinds = []Kind{Banzhaf, Shapley}

// String returns the lowercase selector name ("banzhaf", "shapley").
func (k Kind) String() string {
	switch k {
	case Banzhaf:
		return "banzhaf"
	case Shapley:
		return "shapley"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a selector name to a Kind, ignoring case and surrounding
// whitespace.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "banzhaf":
		return Banzhaf, nil
	case "shapley":
		return Shapley, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// valid reports whether k is a supported index.
func (k Kind) valid() bool { return k == Banzhaf || k == Shapley }
