package syntax

import "github.com/bits-and-blooms/bitset"

// A KindSet is an immutable set of kinds, used wherever a slot accepts
// several syntactic categories (sum-type casts, child filtering).
// Membership tests are O(1).
type KindSet struct {
	bits *bitset.BitSet
}

func NewKindSet(kinds ...Kind) KindSet {
	bits := bitset.New(uint(KIND_COUNT) + 1)
	for _, k := range kinds {
		bits.Set(uint(k))
	}
	return KindSet{bits: bits}
}

func (s KindSet) Has(k Kind) bool {
	return s.bits != nil && s.bits.Test(uint(k))
}

func (s KindSet) Count() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Intersects reports whether the two sets share at least one kind.
func (s KindSet) Intersects(other KindSet) bool {
	if s.bits == nil || other.bits == nil {
		return false
	}
	return s.bits.IntersectionCardinality(other.bits) > 0
}

// Union returns a new set containing the kinds of both sets.
func (s KindSet) Union(other KindSet) KindSet {
	if s.bits == nil {
		return other
	}
	if other.bits == nil {
		return s
	}
	return KindSet{bits: s.bits.Union(other.bits)}
}

// Kinds returns the members in increasing kind order.
func (s KindSet) Kinds() []Kind {
	if s.bits == nil {
		return nil
	}
	kinds := make([]Kind, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		kinds = append(kinds, Kind(i))
	}
	return kinds
}
