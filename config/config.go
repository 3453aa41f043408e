// Package config loads the selection of hasher and store backend a tree
// is constructed from, the same way the teacher's coniksauditor/config.go
// loaded a directory's signing key and address from TOML. It is not a CLI:
// nothing here parses flags or subcommands (spec.md places "packaging,
// CLI" out of scope), it just turns a config file into constructor
// arguments.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/sparsemt/smt-go/hasher"
	_ "github.com/sparsemt/smt-go/hasher/sha3shake"
	_ "github.com/sparsemt/smt-go/hasher/sha512256"
	"github.com/sparsemt/smt-go/kv"
	"github.com/sparsemt/smt-go/kv/leveldbkv"
	"github.com/sparsemt/smt-go/kv/memkv"
)

// StoreConfig selects and parameterizes a kv.Store backend.
type StoreConfig struct {
	// Backend is "memory" or "leveldb".
	Backend string `toml:"backend"`
	// Path is the leveldb data directory. Ignored for "memory".
	Path string `toml:"path,omitempty"`
}

// Config is the top-level tree configuration file shape.
type Config struct {
	// Hasher is a name registered with the hasher package, e.g.
	// "sha512-256", "shake128-32", "shake128-64".
	Hasher string      `toml:"hasher"`
	Store  StoreConfig `toml:"store"`
}

// Load reads and parses a Config from a TOML file.
func Load(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
	}
	return &c, nil
}

// BuildHasher resolves c.Hasher through the hasher registry.
func (c *Config) BuildHasher() (hasher.Hasher, error) {
	return hasher.Get(c.Hasher)
}

// BuildStore constructs the kv.Store described by c.Store. The caller is
// responsible for closing a leveldb-backed store when done.
func (c *Config) BuildStore() (kv.Store, error) {
	switch c.Store.Backend {
	case "", "memory":
		return memkv.New(), nil
	case "leveldb":
		if c.Store.Path == "" {
			return nil, fmt.Errorf("config: leveldb backend requires store.path")
		}
		return leveldbkv.Open(c.Store.Path)
	default:
		return nil, fmt.Errorf("config: unknown store backend %q", c.Store.Backend)
	}
}
