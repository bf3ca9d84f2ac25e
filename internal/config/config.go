// Package config loads server settings from defaults, the environment and CLI overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/janisz/uk-parliament-mcp/internal/fetch"
	"github.com/janisz/uk-parliament-mcp/internal/httpclient"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PARLIAMENT_MCP_"

const (
	ModeStdio = "stdio"
	ModeSSE   = "sse"
	ModeHTTP  = "http"
)

type Config struct {
	Server ServerConfig `koanf:"server"`
	Fetch  FetchConfig  `koanf:"fetch"`
	Cache  CacheConfig  `koanf:"cache"`
	Log    LogConfig    `koanf:"log"`
}

type ServerConfig struct {
	Mode string `koanf:"mode" validate:"required,oneof=stdio sse http"`
	Addr string `koanf:"addr" validate:"required"`
}

type FetchConfig struct {
	Timeout     time.Duration `koanf:"timeout"      validate:"gt=0"`
	MaxAttempts int           `koanf:"max_attempts" validate:"min=1,max=10"`
	RetryDelay  time.Duration `koanf:"retry_delay"  validate:"gte=0"`
	UserAgent   string        `koanf:"user_agent"`
}

type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	Size    int           `koanf:"size" validate:"min=1"`
	TTL     time.Duration `koanf:"ttl"  validate:"gt=0"`
}

type LogConfig struct {
	Debug bool `koanf:"debug"`
	JSON  bool `koanf:"json"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	fetchDefaults := fetch.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Mode: ModeStdio,
			Addr: ":8080",
		},
		Fetch: FetchConfig{
			Timeout:     fetchDefaults.Timeout,
			MaxAttempts: fetchDefaults.MaxAttempts,
			RetryDelay:  fetchDefaults.RetryDelay,
			UserAgent:   "uk-parliament-mcp",
		},
		Cache: CacheConfig{
			Enabled: false,
			Size:    httpclient.DefaultCacheSize,
			TTL:     httpclient.DefaultCacheTTL,
		},
	}
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win over the file.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Load layers defaults, PARLIAMENT_MCP_* environment variables and overrides (koanf
// paths such as "fetch.timeout"), then validates the result.
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return transformEnvKey(key), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply override %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct tag constraints.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// transformEnvKey maps PARLIAMENT_MCP_FETCH_MAX_ATTEMPTS to fetch.max_attempts.
func transformEnvKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_'
	})
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + "." + strings.Join(parts[1:], "_")
	}
}

// FetchSettings converts the fetch section for fetch.New.
func (c *Config) FetchSettings() fetch.Config {
	return fetch.Config{
		Timeout:     c.Fetch.Timeout,
		MaxAttempts: c.Fetch.MaxAttempts,
		RetryDelay:  c.Fetch.RetryDelay,
		UserAgent:   c.Fetch.UserAgent,
	}
}

// ClientOptions converts the cache section for httpclient.NewWithCache.
func (c *Config) ClientOptions() httpclient.Options {
	return httpclient.Options{
		CacheEnabled: c.Cache.Enabled,
		CacheSize:    c.Cache.Size,
		CacheTTL:     c.Cache.TTL,
	}
}
