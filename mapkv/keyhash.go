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

package mapkv

import "hash/fnv"

// Uint64KeyHash is a baseline KeyHash for integer-like keys: the identity
// function, widened to uint64. It matches the teacher's own "Key must be
// an integer type" simplification.
func Uint64KeyHash[K ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](k K) uint64 {
	return uint64(k)
}

// StringKeyHash is a baseline KeyHash for string keys, using FNV-1a. New's
// per-table seeding still mixes this further, so collisions in the base
// hash don't imply collisions in every table.
func StringKeyHash(k string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(k))
	return h.Sum64()
}

// BytesKeyHash is a baseline KeyHash for []byte keys, using FNV-1a.
func BytesKeyHash(k []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(k)
	return h.Sum64()
}
