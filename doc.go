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

// Package lpcuckoo implements the Lehman-Panigrahy cuckoo hash: an
// open-addressed table that combines NumHashes hash functions with short
// linear-probing runs ("buckets") at each hash position, trading a little
// of 3.5-way cuckoo hashing's load factor for 2-way cuckoo's storage cost.
//
// The table is generic over a key type K and a slot type V; all hashing,
// equality, and slot lifecycle decisions are delegated to a caller-supplied
// HashOps implementation, and slot array allocation is delegated to an
// Allocator. This package only implements the table engine: slot layout,
// lookup, BFS-driven eviction insertion, and deletion. Pick a hash function,
// an allocation strategy, and a slot encoding elsewhere; see the mapkv
// subpackage for a ready-made instantiation.
//
// Dynamic resizing is not implemented: a table is sized once, at
// construction, for a target capacity. Insert reports ErrFull rather than
// growing when the eviction search cannot find room.
//
// A Table is not safe for concurrent use; callers needing concurrent access
// must synchronize externally.
package lpcuckoo
