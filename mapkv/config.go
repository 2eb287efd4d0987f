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
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

var (
	errNumHashes   = errors.New("mapkv: num_hashes must be at least 2")
	errBucketWidth = errors.New("mapkv: bucket_width must be at least 1")
	errLoadFactor  = errors.New("mapkv: load_factor must be in (0, 1]")
)

// Config holds the tunables New needs to build a Map: table geometry, the
// target load factor, the BFS round bound, and the seed used to derive
// independent per-table hash functions.
type Config struct {
	NumHashes    int     `json:"num_hashes"`
	BucketWidth  int     `json:"bucket_width"`
	LoadFactor   float64 `json:"load_factor"`
	MaxBfsRounds int     `json:"max_bfs_rounds"`
	Seed         uint64  `json:"seed"`
}

// DefaultConfig returns the teacher-equivalent defaults: 2 hash functions
// (matching the teacher's fixed nhash=2 case), a bucket width of 4, a 0.9
// load factor, and 100 BFS rounds.
func DefaultConfig() Config {
	return Config{
		NumHashes:    2,
		BucketWidth:  4,
		LoadFactor:   0.9,
		MaxBfsRounds: 100,
		Seed:         0x5bd1e995,
	}
}

// Option overrides a single Config field at Map construction time, the same
// way the root package's functional Options tweak its config struct.
type Option func(*Config)

// WithBucketWidth overrides the bucket width a Config supplies, without
// needing to build a whole Config by hand.
func WithBucketWidth(n int) Option {
	return func(c *Config) { c.BucketWidth = n }
}

func (c Config) validate() error {
	if c.NumHashes < 2 {
		return errNumHashes
	}
	if c.BucketWidth < 1 {
		return errBucketWidth
	}
	if c.LoadFactor <= 0 || c.LoadFactor > 1 {
		return errLoadFactor
	}
	return nil
}

// LoadConfigFile reads a JSON/JWCC (JSON-with-comments) config file,
// starting from DefaultConfig and overriding whatever fields the file sets.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("mapkv: read config %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("mapkv: invalid config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("mapkv: parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
