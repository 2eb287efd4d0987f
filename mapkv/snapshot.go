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

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/natefinch/atomic"
)

// Stats is a point-in-time snapshot of a Map's occupancy, for operator
// tooling (the lpcuckoo-repl "stats -save" command). It is not the table's
// contents: persistence of the table itself is out of scope for this
// package, per the engine's non-goals.
type Stats struct {
	Len        int       `json:"len"`
	LoadFactor float64   `json:"load_factor"`
	CapturedAt time.Time `json:"captured_at"`
}

// Snapshot captures m's current occupancy stats.
func (m *Map[K, V]) Snapshot(now time.Time) Stats {
	return Stats{
		Len:        m.Len(),
		LoadFactor: m.LoadFactor(),
		CapturedAt: now,
	}
}

// DumpStats writes s to path as indented JSON, using an atomic
// write-then-rename so a concurrent reader never observes a partial file.
func DumpStats(path string, s Stats) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("mapkv: marshal stats: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("mapkv: write stats to %s: %w", path, err)
	}

	return nil
}
