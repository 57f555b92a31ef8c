// Package base implements the lazily path-compressed union-find variant
// blossom contraction needs: every vertex tracks the representative
// ("base") of the blossom it currently belongs to, contraction re-points
// a blossom's root at a new base in O(1), and lookups compress the path
// they walk so repeated queries stay near-constant time.
//
// Unlike a textbook union-find, union is asymmetric and explicit: SetBase
// always re-roots the base chain of the given vertex's current root at
// the supplied new base, rather than picking a root by rank or size. The
// blossom algorithm relies on this to make the new blossom vertex (or
// its stem) the base of everything it just absorbed.
package base
