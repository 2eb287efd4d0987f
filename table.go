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

import "math"

// Table is a Lehman-Panigrahy cuckoo hash table: NumHashes parallel slot
// arrays, each logically B buckets of BucketWidth slots, addressed with the
// overflow-tail discipline (each array is allocated B+BucketWidth-1 slots
// so a bucket base in [0, B) never probes past the end of the array).
//
// Table is not safe for concurrent use.
type Table[K any, V any] struct {
	ops   HashOps[K, V]
	alloc Allocator[V]

	tables [][]V // len == numHashes, each len == b + bucketWidth - 1
	b      int   // logical bucket count per table

	numHashes   int
	bucketWidth int

	count        int
	maxBfsRounds int

	// scratch buffers, reset at the start of each insert that reaches
	// Phase 2; reused across calls to avoid per-call allocation.
	queue []bfsNode
}

// New constructs a Table sized to hold at least capacity entries at the
// configured load factor (0.9 by default). ops supplies hashing, equality,
// and slot lifecycle; alloc supplies the slot array allocation strategy.
func New[K any, V any](capacity int, ops HashOps[K, V], alloc Allocator[V], opts ...Option) (*Table[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	numHashes := ops.NumHashes()
	if numHashes < 2 {
		return nil, ErrZeroNumHashes
	}

	bucketWidth := ops.BucketWidth()
	if bucketWidth < 1 {
		return nil, ErrZeroBucketWidth
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// B * numHashes >= capacity / loadFactor.
	b := int(math.Ceil(float64(capacity) / cfg.loadFactor / float64(numHashes)))
	if b < 1 {
		b = 1
	}

	t := &Table[K, V]{
		ops:          ops,
		alloc:        alloc,
		tables:       make([][]V, numHashes),
		b:            b,
		numHashes:    numHashes,
		bucketWidth:  bucketWidth,
		maxBfsRounds: cfg.maxBfsRounds,
	}

	arrayLen := b + bucketWidth - 1
	for i := range t.tables {
		t.tables[i] = alloc.Alloc(arrayLen)
	}

	t.queue = make([]bfsNode, 0, cfg.maxBfsRounds*numHashes*bucketWidth)

	return t, nil
}

// Len returns the number of occupied slots.
func (t *Table[K, V]) Len() int { return t.count }

// LoadFactor returns the ratio of occupied slots to total allocated slots.
func (t *Table[K, V]) LoadFactor() float64 {
	total := 0
	for _, tbl := range t.tables {
		total += len(tbl)
	}
	return float64(t.count) / float64(total)
}

// Close releases the table's slot arrays back to its Allocator. The table
// must not be used afterwards.
func (t *Table[K, V]) Close() {
	for i, tbl := range t.tables {
		t.alloc.Free(tbl)
		t.tables[i] = nil
	}
}

// bucketBase returns the first index of the bucket a hash rooted at h maps
// to in a table of logical size t.b.
func (t *Table[K, V]) bucketBase(h uint64) int {
	return int(h % uint64(t.b))
}

// hashesOf computes the hash of key under every hash function, in table
// order.
func (t *Table[K, V]) hashesOf(key K) []uint64 {
	h := make([]uint64, t.numHashes)
	for i := 0; i < t.numHashes; i++ {
		h[i] = t.ops.HashKey(i, key)
	}
	return h
}

// All returns a coordinate-ordered walk over every occupied slot, for
// debugging and the REPL's dump command. Like Find and Insert iterators, it
// carries no stability guarantee: mutating the table mid-walk is undefined.
func (t *Table[K, V]) All() []Iterator[K, V] {
	var out []Iterator[K, V]
	for ti, tbl := range t.tables {
		for idx := range tbl {
			if !t.ops.Empty(&tbl[idx]) {
				out = append(out, Iterator[K, V]{t: t, c: coord{table: ti, index: idx}})
			}
		}
	}
	return out
}
