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

// Erase removes the entry at it, which must have come from Find or Insert
// on this table. Erasing the end-iterator panics. No tombstone is left:
// Find's eager bucket scan never stops at an empty slot, so clearing in
// place is sufficient.
func (t *Table[K, V]) Erase(it Iterator[K, V]) {
	if it.IsEnd() {
		panic("lpcuckoo: Erase called on end-iterator")
	}
	t.ops.Clear(it.Slot())
	t.count--
}
