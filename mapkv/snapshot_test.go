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
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpStatsWritesReadableJSON(t *testing.T) {
	m, err := New[string, int](16, StringKeyHash, DefaultConfig())
	require.NoError(t, err)
	_, err = m.Insert("a", 1)
	require.NoError(t, err)
	_, err = m.Insert("b", 2)
	require.NoError(t, err)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path := t.TempDir() + "/stats.json"
	require.NoError(t, DumpStats(path, m.Snapshot(now)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Stats
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 2, got.Len)
	assert.True(t, got.CapturedAt.Equal(now))
}
