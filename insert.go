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

// Insert adds key to the table if it is not already present.
//
// If key is already present, Insert returns (iterator-to-existing-slot,
// false, nil). If key is newly placed, it returns (iterator-to-new-slot,
// true, nil). If the table has no room for key even after the BFS eviction
// search, it returns (End(), false, ErrFull); the table is left unmodified
// in that case.
func (t *Table[K, V]) Insert(key K) (Iterator[K, V], bool, error) {
	hashes := t.hashesOf(key)

	// Phase 1: scan both home buckets for a duplicate or the first empty
	// slot. The scan must visit every slot of both buckets before Phase 2
	// begins, or a duplicate further along a bucket could be missed.
	candidate := coord{table: -1}

	for i := 0; i < t.numHashes; i++ {
		h := hashes[i]
		base := t.bucketBase(h)
		tbl := t.tables[i]

		for j := 0; j < t.bucketWidth; j++ {
			idx := base + j
			slot := &tbl[idx]

			if t.ops.Equals(h, key, slot) {
				return Iterator[K, V]{t: t, c: coord{table: i, index: idx}}, false, nil
			}

			if candidate.table == -1 && t.ops.Empty(slot) {
				candidate = coord{table: i, index: idx}
			}
		}
	}

	if candidate.table != -1 {
		t.ops.Init(candidate.table, hashes[candidate.table], key, &t.tables[candidate.table][candidate.index])
		t.count++
		return Iterator[K, V]{t: t, c: candidate}, true, nil
	}

	// Phase 2: both home buckets are full. Run the BFS eviction search.
	return t.insertBFS(key, hashes)
}
