// Package config loads the gedtree configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/gedtree/config.toml
// (~/.config/gedtree/config.toml when XDG_CONFIG_HOME is unset):
//
//	[parse]
//	strict = false
//
//	[cache]
//	backend = "file"      # file, redis or none
//	dir = ""              # defaults to the user cache directory
//	ttl = "168h"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	store = "memory"      # memory, sqlite or mongo
//	sqlite_path = "gedtree.db"
//	mongo_uri = "mongodb://localhost:27017"
//	mongo_database = "gedtree"
//
//	[export]
//	date_layout = "2006-01-02"
//
// A missing file is not an error; the defaults apply. GEDTREE_REDIS_ADDR and
// GEDTREE_MONGO_URI override the corresponding keys.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Backend names.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"

	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
)

// Environment variables that override the file.
const (
	EnvRedisAddr = "GEDTREE_REDIS_ADDR"
	EnvMongoURI  = "GEDTREE_MONGO_URI"
)

// Config is the complete configuration.
type Config struct {
	Parse  Parse  `toml:"parse"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
	Export Export `toml:"export"`
}

type Parse struct {
	Strict bool `toml:"strict"`
}

type Cache struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	TTL       Duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
}

type Server struct {
	Addr          string `toml:"addr"`
	Store         string `toml:"store"`
	SQLitePath    string `toml:"sqlite_path"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

type Export struct {
	DateLayout string `toml:"date_layout"`
}

// Duration is a time.Duration written as a string such as "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cache: Cache{
			Backend:   CacheFile,
			TTL:       Duration{7 * 24 * time.Hour},
			RedisAddr: "localhost:6379",
		},
		Server: Server{
			Addr:          ":8080",
			Store:         StoreMemory,
			SQLitePath:    "gedtree.db",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "gedtree",
		},
		Export: Export{
			DateLayout: "2006-01-02",
		},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "gedtree", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "gedtree", "config.toml"), nil
}

// Load reads path on top of [Default] and applies environment overrides.
// An empty path means [Path]. A missing file yields the defaults. Unknown keys
// are returned in undecoded so callers can warn about typos.
func Load(path string) (cfg Config, undecoded []string, err error) {
	cfg = Default()
	if path == "" {
		if path, err = Path(); err != nil {
			return cfg, nil, err
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = nil
	case err != nil:
		return cfg, nil, fmt.Errorf("parse %s: %w", path, err)
	default:
		for _, key := range md.Undecoded() {
			undecoded = append(undecoded, key.String())
		}
	}

	applyEnv(&cfg)
	return cfg, undecoded, cfg.Validate()
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvRedisAddr); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv(EnvMongoURI); v != "" {
		cfg.Server.MongoURI = v
	}
}

// Validate checks the backend names.
func (c Config) Validate() error {
	if !slices.Contains([]string{CacheFile, CacheRedis, CacheNone}, c.Cache.Backend) {
		return fmt.Errorf("cache.backend: unknown backend %q", c.Cache.Backend)
	}
	if !slices.Contains([]string{StoreMemory, StoreSQLite, StoreMongo}, c.Server.Store) {
		return fmt.Errorf("server.store: unknown store %q", c.Server.Store)
	}
	if c.Cache.TTL.Duration < 0 {
		return fmt.Errorf("cache.ttl: must not be negative")
	}
	if strings.TrimSpace(c.Export.DateLayout) == "" {
		return fmt.Errorf("export.date_layout: must not be empty")
	}
	return nil
}

// Write encodes cfg as TOML to path, creating parent directories.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
