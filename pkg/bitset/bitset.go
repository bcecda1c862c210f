// Package bitset implements BitSet31, a compact set of integers in [1,31]
// packed into a single 32-bit word. Levels are stored one-per-bit (level L
// at bit L-1), so the full 31-level range fits with one bit of the word to
// spare. The set operations compile to one or two machine instructions and
// do not allocate; only Members and String build a slice or string.
package bitset

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// MaxLevel is the largest preference level a BitSet31 can hold.
const MaxLevel = 31

// BitSet31 is a set of integers in [1, MaxLevel].
type BitSet31 uint32

// Empty returns the empty set.
func Empty() BitSet31 { return BitSet31(0) }

// Singleton returns the set containing only level.
// Panics if level is outside [1, MaxLevel]; callers are expected to have
// validated preference levels against MaxLevel before construction.
func Singleton(level int) BitSet31 {
	mustValidLevel(level)
	return BitSet31(1) << uint(level-1)
}

func mustValidLevel(level int) {
	if level < 1 || level > MaxLevel {
		panic(fmt.Sprintf("bitset: level %d out of range [1,%d]", level, MaxLevel))
	}
}

// Union returns a ∪ b.
func (a BitSet31) Union(b BitSet31) BitSet31 { return a | b }

// Intersect returns a ∩ b.
func (a BitSet31) Intersect(b BitSet31) BitSet31 { return a & b }

// Difference returns a \ b.
func (a BitSet31) Difference(b BitSet31) BitSet31 { return a &^ b }

// Contains reports whether level is a member of a.
func (a BitSet31) Contains(level int) bool {
	if level < 1 || level > MaxLevel {
		return false
	}
	return a&(BitSet31(1)<<uint(level-1)) != 0
}

// IsEmpty reports whether a has no members.
func (a BitSet31) IsEmpty() bool { return a == 0 }

// Minimum returns the smallest member of a and true, or (0, false) if a is
// empty. Implemented as a trailing-zero count over the underlying word.
func (a BitSet31) Minimum() (int, bool) {
	if a == 0 {
		return 0, false
	}
	return bits.TrailingZeros32(uint32(a)) + 1, true
}

// Len returns the number of members of a.
func (a BitSet31) Len() int { return bits.OnesCount32(uint32(a)) }

// Members returns the members of a in increasing order.
func (a BitSet31) Members() []int {
	out := make([]int, 0, a.Len())
	for w := uint32(a); w != 0; {
		lvl := bits.TrailingZeros32(w) + 1
		out = append(out, lvl)
		w &= w - 1
	}
	return out
}

// String renders a as "{1,3,7}".
func (a BitSet31) String() string {
	members := a.Members()
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = strconv.Itoa(m)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
