// Package config resolves the hunter configuration from defaults, an optional
// YAML file and WALLETHUNT_* environment variables. CLI flags are applied by
// the caller on top of the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/wallethunt/pkg/adapters/process"
	"github.com/aretw0/wallethunt/pkg/domain"
)

// DefaultPath is the config file picked up from the working directory when no
// path is given.
const DefaultPath = "wallethunt.yaml"

// Store backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config is the resolved hunter configuration.
type Config struct {
	WalletType  string         `yaml:"wallet_type" mapstructure:"wallet_type"`
	AddrLimit   int            `yaml:"addr_limit" mapstructure:"addr_limit"`
	Typos       int            `yaml:"typos" mapstructure:"typos"`
	Dir         string         `yaml:"dir" mapstructure:"dir"`
	Strict      bool           `yaml:"strict" mapstructure:"strict"`
	MetricsAddr string         `yaml:"metrics_addr" mapstructure:"metrics_addr"`
	Log         LogConfig      `yaml:"log" mapstructure:"log"`
	Store       StoreConfig    `yaml:"store" mapstructure:"store"`
	Engine      process.Config `yaml:"engine" mapstructure:"engine"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Debug  bool   `yaml:"debug" mapstructure:"debug"`
	Format string `yaml:"format" mapstructure:"format"` // text | json
}

// StoreConfig selects where exclusions are kept.
type StoreConfig struct {
	Backend string      `yaml:"backend" mapstructure:"backend"`
	Redis   RedisConfig `yaml:"redis" mapstructure:"redis"`
	// DigestKey, when set, makes the store keep HMAC digests of phrases
	// instead of the phrases themselves.
	DigestKey string `yaml:"digest_key" mapstructure:"digest_key"`
	// DigestFallbackKeys are retired digest keys still honored on lookup.
	DigestFallbackKeys []string `yaml:"digest_fallback_keys" mapstructure:"digest_fallback_keys"`
}

// RedisConfig holds the connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
	Prefix   string `yaml:"prefix" mapstructure:"prefix"`
	// LockTTL is the lifetime of the per-target lease a hunt holds while it
	// runs; the lease is refreshed well before it expires.
	LockTTL time.Duration `yaml:"lock_ttl" mapstructure:"lock_ttl"`
}

// Default returns the built-in configuration: one Ethereum address, a typo
// budget of one and btcrecover's seedrecover.py as the engine.
func Default() Config {
	return Config{
		WalletType: domain.DefaultWalletType,
		AddrLimit:  1,
		Typos:      1,
		Dir:        ".",
		Log:        LogConfig{Format: "text"},
		Store: StoreConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379", Prefix: "wallethunt:", LockTTL: 30 * time.Second},
		},
		Engine: process.DefaultConfig(),
	}
}

// envKeys maps environment variables to dotted config keys.
var envKeys = map[string]string{
	"WALLETHUNT_WALLET_TYPE":    "wallet_type",
	"WALLETHUNT_ADDR_LIMIT":     "addr_limit",
	"WALLETHUNT_TYPOS":          "typos",
	"WALLETHUNT_DIR":            "dir",
	"WALLETHUNT_STRICT":         "strict",
	"WALLETHUNT_METRICS_ADDR":   "metrics_addr",
	"WALLETHUNT_DEBUG":          "log.debug",
	"WALLETHUNT_LOG_FORMAT":     "log.format",
	"WALLETHUNT_STORE":          "store.backend",
	"WALLETHUNT_REDIS_ADDR":     "store.redis.addr",
	"WALLETHUNT_REDIS_PASSWORD": "store.redis.password",
	"WALLETHUNT_REDIS_DB":       "store.redis.db",
	"WALLETHUNT_DIGEST_KEY":     "store.digest_key",
	"WALLETHUNT_ENGINE_COMMAND": "engine.command",
	"WALLETHUNT_ENGINE_ARGS":    "engine.args",
}

// Load resolves the configuration.
//
// If path is empty, DefaultPath is used when it exists. An explicit path must
// exist. environ is a list of KEY=VALUE pairs, usually os.Environ().
func Load(path string, environ []string) (Config, error) {
	raw := map[string]any{}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if key, known := envKeys[k]; known {
			setPath(raw, key, v)
		}
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(" "),
		),
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setPath(m map[string]any, dotted, value string) {
	parts := strings.Split(dotted, ".")
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.WalletType) == "" {
		return errors.New("wallet_type cannot be empty")
	}
	if c.AddrLimit < 1 {
		return fmt.Errorf("addr_limit must be at least 1, got %d", c.AddrLimit)
	}
	if c.Typos < 0 {
		return fmt.Errorf("typos cannot be negative, got %d", c.Typos)
	}
	switch c.Store.Backend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if c.Store.Redis.Addr == "" {
			return errors.New("store.redis.addr is required for the redis backend")
		}
		if c.Store.Redis.LockTTL < time.Second {
			return fmt.Errorf("store.redis.lock_ttl must be at least 1s, got %s", c.Store.Redis.LockTTL)
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if strings.TrimSpace(c.Engine.Command) == "" {
		return errors.New("engine.command cannot be empty")
	}
	return nil
}
