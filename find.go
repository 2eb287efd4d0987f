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

// Find looks up key. If an occupied slot holding key exists in any of its
// NumHashes home buckets, Find returns an Iterator to it; otherwise it
// returns End().
//
// The scan is eager: an empty slot inside a bucket does not stop the scan,
// because a prior insertion may have relocated key's entry further along
// the same bucket.
func (t *Table[K, V]) Find(key K) Iterator[K, V] {
	for i := 0; i < t.numHashes; i++ {
		h := t.ops.HashKey(i, key)
		base := t.bucketBase(h)
		tbl := t.tables[i]
		for j := 0; j < t.bucketWidth; j++ {
			slot := &tbl[base+j]
			if t.ops.Equals(h, key, slot) {
				return Iterator[K, V]{t: t, c: coord{table: i, index: base + j}}
			}
		}
	}
	return t.End()
}
