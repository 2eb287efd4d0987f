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

// Package mapkv provides Map, a ready-to-use map[K]V built on the lpcuckoo
// table engine, in the spirit of the teacher implementation's own Cuckoo
// type: Search/Insert/Delete/Len/LoadFactor/All, with hashing supplied for
// you.
//
// Unlike the teacher implementation (which resolves collisions with a
// random walk over two fixed hash functions), Map is backed by
// lpcuckoo.Table's breadth-first eviction search over a configurable
// number of hash functions and bucket width, which is why load factors
// approaching 0.9 remain practical.
package mapkv

import (
	"math/rand"

	"github.com/salviati/lpcuckoo"
)

// Entry is the slot type Map stores: an occupancy flag, the logical key
// (needed so HashSlot can rehash it under any table), and the caller's
// value payload.
type Entry[K comparable, V any] struct {
	occupied bool
	key      K
	val      V
}

// hashOps is Map's HashOps implementation: NumHashes independently seeded
// bit-mixers cycling through the teacher's three named mixing functions.
type hashOps[K comparable, V any] struct {
	numHashes   int
	bucketWidth int
	seeds       []uint64
	keyHash     func(K) uint64
}

func (o *hashOps[K, V]) NumHashes() int   { return o.numHashes }
func (o *hashOps[K, V]) BucketWidth() int { return o.bucketWidth }

func (o *hashOps[K, V]) HashKey(i int, key K) uint64 {
	return mixHash(i, o.seeds[i], o.keyHash(key))
}

func (o *hashOps[K, V]) HashSlot(i int, slot *Entry[K, V]) uint64 {
	return o.HashKey(i, slot.key)
}

func (o *hashOps[K, V]) Equals(h uint64, key K, slot *Entry[K, V]) bool {
	return slot.occupied && slot.key == key
}

func (o *hashOps[K, V]) Empty(slot *Entry[K, V]) bool { return !slot.occupied }

func (o *hashOps[K, V]) Init(i int, h uint64, key K, slot *Entry[K, V]) {
	var zero V
	slot.occupied = true
	slot.key = key
	slot.val = zero
}

func (o *hashOps[K, V]) Clear(slot *Entry[K, V]) { *slot = Entry[K, V]{} }

// mixHash folds base down to 32 bits, mixes it with the given seed using
// one of the teacher's three bit-mixers (cycled by hash index so that
// NumHashes > 3 still gets independent-looking hash functions), and widens
// the result back out to 64 bits for use as a bucket-selecting hash.
func mixHash(i int, seed uint64, base uint64) uint64 {
	folded := uint32(base) ^ uint32(base>>32)
	seedFolded := uint32(seed) ^ uint32(seed>>32)

	switch i % 3 {
	case 0:
		return uint64(murmur3_32(folded, seedFolded))
	case 1:
		return uint64(xx_32(folded, seedFolded))
	default:
		return uint64(mem_32(folded^seedFolded, 0))
	}
}

func deriveSeeds(seed uint64, n int) []uint64 {
	r := rand.New(rand.NewSource(int64(seed)))
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = uint64(r.Uint32())<<32 | uint64(r.Uint32())
	}
	return seeds
}

// Map is a map[K]V built on lpcuckoo.Table.
type Map[K comparable, V any] struct {
	t   *lpcuckoo.Table[K, Entry[K, V]]
	ops *hashOps[K, V]
}

// New constructs a Map sized for capacity entries, hashing keys with
// keyHash. cfg supplies NumHashes, BucketWidth, the target load factor, the
// BFS round bound, and the seed used to derive independent hash functions;
// pass DefaultConfig() for the teacher-equivalent defaults.
func New[K comparable, V any](capacity int, keyHash func(K) uint64, cfg Config, opts ...Option) (*Map[K, V], error) {
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ops := &hashOps[K, V]{
		numHashes:   cfg.NumHashes,
		bucketWidth: cfg.BucketWidth,
		seeds:       deriveSeeds(cfg.Seed, cfg.NumHashes),
		keyHash:     keyHash,
	}

	t, err := lpcuckoo.New[K, Entry[K, V]](
		capacity,
		ops,
		lpcuckoo.DefaultAllocator[Entry[K, V]]{},
		lpcuckoo.WithLoadFactor(cfg.LoadFactor),
		lpcuckoo.WithMaxBfsRounds(cfg.MaxBfsRounds),
	)
	if err != nil {
		return nil, err
	}

	return &Map[K, V]{t: t, ops: ops}, nil
}

// Search retrieves the value associated with k. ok is false if no such
// entry exists.
func (m *Map[K, V]) Search(k K) (v V, ok bool) {
	it := m.t.Find(k)
	if it.IsEnd() {
		return v, false
	}
	return it.Slot().val, true
}

// Insert adds or overwrites the value for k. existed reports whether k was
// already present (in which case its value is overwritten in place). err
// is non-nil (lpcuckoo.ErrFull) only when k is new and no room could be
// made for it; in that case the map is left unmodified.
func (m *Map[K, V]) Insert(k K, v V) (existed bool, err error) {
	it, inserted, err := m.t.Insert(k)
	if err != nil {
		return false, err
	}
	it.Slot().val = v
	return !inserted, nil
}

// Delete removes k, reporting whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	it := m.t.Find(k)
	if it.IsEnd() {
		return false
	}
	m.t.Erase(it)
	return true
}

// Len returns the number of entries currently stored.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// LoadFactor returns the ratio of occupied slots to total allocated slots.
func (m *Map[K, V]) LoadFactor() float64 { return m.t.LoadFactor() }

// BucketWidth returns the bucket width this Map was constructed with.
func (m *Map[K, V]) BucketWidth() int { return m.ops.bucketWidth }

// Close releases the map's underlying slot storage.
func (m *Map[K, V]) Close() { m.t.Close() }

// Pair is one entry returned by All.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// All returns every live entry, in the coordinate order of the underlying
// Table.All() walk. Like Table.All, it carries no stability guarantee
// across a concurrent Insert/Delete; it exists for debugging and the REPL's
// "dump" command.
func (m *Map[K, V]) All() []Pair[K, V] {
	its := m.t.All()
	out := make([]Pair[K, V], len(its))
	for i, it := range its {
		slot := it.Slot()
		out[i] = Pair[K, V]{Key: slot.key, Value: slot.val}
	}
	return out
}
