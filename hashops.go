// Copyright (c) 2014 Utkan Güngördü <utkan@freeconsole.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package lpcuckoo

// HashOps is the capability bundle a Table delegates all key/slot-specific
// decisions to: hashing, equality, and slot lifecycle. Table treats V
// opaquely other than through these methods.
//
// Implementations must keep HashKey and HashSlot consistent: for any occupied
// slot s logically holding key k, HashSlot(i, s) must equal HashKey(i, k)
// for every table index i. The BFS eviction search relies on this to
// rehash a slot's occupant without needing to recover the logical key
// through a separate accessor.
type HashOps[K any, V any] interface {
	// NumHashes returns the number of hash functions (and therefore
	// tables). Must be at least 2.
	NumHashes() int

	// BucketWidth returns the number of slots scanned per bucket. Must be
	// at least 1.
	BucketWidth() int

	// HashKey computes the hash of key under hash function i.
	HashKey(i int, key K) uint64

	// HashSlot computes the hash of an occupied slot's logical key under
	// hash function i. Must agree with HashKey on the slot's key.
	HashSlot(i int, slot *V) uint64

	// Equals reports whether slot is occupied and holds key. h is the
	// precomputed hash of key under the table slot belongs to; it is
	// advisory and need not be consulted.
	Equals(h uint64, key K, slot *V) bool

	// Empty reports whether slot is in the empty state.
	Empty(slot *V) bool

	// Init writes key into slot, using the precomputed hash h of key under
	// hash function i (the table slot belongs to). Afterwards
	// Empty(slot) must be false.
	Init(i int, h uint64, key K, slot *V)

	// Clear resets slot to the empty state.
	Clear(slot *V)
}

// Allocator produces and releases slot arrays for a Table. Injecting this
// lets the engine be exercised against instrumented storage in tests
// without changing the production allocation strategy.
type Allocator[V any] interface {
	// Alloc returns a slice of n slots, all of them empty.
	Alloc(n int) []V

	// Free releases a slice previously returned by Alloc. Implementations
	// that rely on the garbage collector may treat this as a no-op.
	Free(s []V)
}

// DefaultAllocator is an Allocator backed by ordinary Go slice allocation;
// Free is a no-op and the backing array is reclaimed by the garbage
// collector once unreferenced.
type DefaultAllocator[V any] struct{}

// Alloc implements Allocator.
func (DefaultAllocator[V]) Alloc(n int) []V { return make([]V, n) }

// Free implements Allocator.
func (DefaultAllocator[V]) Free(s []V) {}
