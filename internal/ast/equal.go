package ast

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Equal reports whether a and b are the same tree, ignoring positions,
// the nil/empty slice distinction and how doc attributes were spelled.
func Equal(a, b any) bool {
	return reflect.DeepEqual(Normalize(a), Normalize(b))
}

// Diff returns a human-readable difference between the normalised trees,
// or "" when they are Equal.
func Diff(a, b any) string {
	return cmp.Diff(Normalize(a), Normalize(b))
}
