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

import "errors"

// Errors returned by operational (non-panic) failure paths.
//
// Internal invariant violations (a malformed BFS chain, a parent index out
// of range, a vacated slot that didn't come up empty) are not reported
// through these: they indicate a bug in this package, not in the caller,
// and panic instead.
var (
	// ErrFull is returned by Insert when the BFS eviction search exhausts
	// MaxBfsRounds without finding a free slot to relocate into.
	ErrFull = errors.New("lpcuckoo: table full")

	// ErrInvalidCapacity is returned by New when capacity is not positive.
	ErrInvalidCapacity = errors.New("lpcuckoo: capacity must be positive")

	// ErrZeroNumHashes is returned by New when ops.NumHashes() < 2.
	ErrZeroNumHashes = errors.New("lpcuckoo: NumHashes must be at least 2")

	// ErrZeroBucketWidth is returned by New when ops.BucketWidth() < 1.
	ErrZeroBucketWidth = errors.New("lpcuckoo: BucketWidth must be at least 1")
)
