package gsp

// DiscreteKey identifies the quantization cell a search state falls into:
// one unsigned time bucket and three signed spatial buckets on the
// n-vector axes. Two states share a key iff they fall in the same 4-cell.
//
// DiscreteKey is a plain comparable struct, so Go's built-in map already
// gives structural equality and hashing for free; Hash below exists only
// because the mixing formula is part of this system's contract, not
// because any map here needs it.
type DiscreteKey struct {
	T       uint64
	X, Y, Z int64
}

// SameSpace reports whether k and other fall in the same spatial cell,
// ignoring the time bucket. This is the goal test; it must never be used
// for open/close list membership, which needs the full 4-tuple.
func (k DiscreteKey) SameSpace(other DiscreteKey) bool {
	return k.X == other.X && k.Y == other.Y && k.Z == other.Z
}

const hashMix = 0x9e3779b9

func combineHash(h1, h2 uint64) uint64 {
	return h1 ^ (h2*hashMix + (h1 << 6) + (h1 >> 2))
}

// Hash combines the four components left-associatively with the classic
// boost::hash_combine mixing function, seeded with the time component.
func (k DiscreteKey) Hash() uint64 {
	h := k.T
	h = combineHash(h, uint64(k.X))
	h = combineHash(h, uint64(k.Y))
	h = combineHash(h, uint64(k.Z))
	return h
}
