// Package config loads the tradein settings from a YAML file, a .env file and
// TRADEIN_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TRADEIN_"

// Config is the full application configuration.
type Config struct {
	Floor      int     `yaml:"floor"`
	Currency   string  `yaml:"currency"`
	Shipping   float64 `yaml:"shipping"`
	APIURL     string  `yaml:"api_url"`
	ImageBase  string  `yaml:"image_base"`
	CatalogDir string  `yaml:"catalog_dir"`

	// FallbackCatalog replaces the built-in questionnaire (YAML or JSON file).
	FallbackCatalog string `yaml:"fallback_catalog"`

	// EncryptionKey enables AES-GCM session encryption (32 bytes, base64 or hex).
	EncryptionKey string   `yaml:"encryption_key"`
	FallbackKeys  []string `yaml:"fallback_keys"`

	Redis   RedisConfig   `yaml:"redis"`
	HTTP    HTTPConfig    `yaml:"http"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration: floor 50, EUR, no shipping,
// in-memory stores.
func Default() Config {
	return Config{
		Floor:    50,
		Currency: "EUR",
		Redis: RedisConfig{
			Prefix: "tradein:",
			TTL:    24 * time.Hour,
		},
		HTTP: HTTPConfig{Port: 8080},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

// UseRedis reports whether Redis-backed stores are configured.
func (c Config) UseRedis() bool {
	return c.Redis.Addr != ""
}

// Symbol returns the display symbol of the configured currency.
func (c Config) Symbol() string {
	switch strings.ToUpper(c.Currency) {
	case "EUR", "":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	default:
		return c.Currency + " "
	}
}

// Level parses the configured log level.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Floor < 0 {
		errs = append(errs, fmt.Errorf("floor must not be negative, got %d", c.Floor))
	}
	if c.Shipping < 0 {
		errs = append(errs, fmt.Errorf("shipping must not be negative, got %v", c.Shipping))
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port out of range: %d", c.HTTP.Port))
	}
	if c.Redis.DB < 0 {
		errs = append(errs, fmt.Errorf("redis.db must not be negative, got %d", c.Redis.DB))
	}
	return errors.Join(errs...)
}

type loader struct {
	file     string
	envFile  string
	required bool
	lookup   func(string) (string, bool)
}

// Option configures Load.
type Option func(*loader)

// WithFile reads the YAML file at path. A missing file is an error.
func WithFile(path string) Option {
	return func(l *loader) {
		l.file = path
	}
}

// WithEnvFile reads KEY=VALUE pairs from path. A missing file is ignored.
func WithEnvFile(path string) Option {
	return func(l *loader) {
		l.envFile = path
	}
}

// WithLookup replaces os.LookupEnv.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(l *loader) {
		l.lookup = fn
	}
}

// Load builds the configuration. Process environment wins over the .env file,
// which wins over the YAML file, which wins over Default.
func Load(opts ...Option) (Config, error) {
	l := &loader{
		envFile: ".env",
		lookup:  os.LookupEnv,
	}
	for _, opt := range opts {
		opt(l)
	}

	cfg := Default()
	if l.file != "" {
		data, err := os.ReadFile(l.file)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", l.file, err)
		}
	}

	dotenv := map[string]string{}
	if l.envFile != "" {
		vals, err := godotenv.Read(l.envFile)
		switch {
		case err == nil:
			dotenv = vals
		case !errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("failed to read env file %s: %w", l.envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := l.lookup(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := dotenv[EnvPrefix+key]
		return v, ok
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dest *string) {
		if v, ok := lookup(key); ok {
			*dest = v
		}
	}
	num := func(key string, dest *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dest = n
		}
	}

	num("FLOOR", &cfg.Floor)
	str("CURRENCY", &cfg.Currency)
	if v, ok := lookup("SHIPPING"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSHIPPING: %w", EnvPrefix, err))
		} else {
			cfg.Shipping = f
		}
	}
	str("API_URL", &cfg.APIURL)
	str("IMAGE_BASE", &cfg.ImageBase)
	str("CATALOG_DIR", &cfg.CatalogDir)
	str("FALLBACK_CATALOG", &cfg.FallbackCatalog)
	str("ENCRYPTION_KEY", &cfg.EncryptionKey)
	if v, ok := lookup("FALLBACK_KEYS"); ok {
		cfg.FallbackKeys = nil
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				cfg.FallbackKeys = append(cfg.FallbackKeys, k)
			}
		}
	}

	str("REDIS_ADDR", &cfg.Redis.Addr)
	str("REDIS_PASSWORD", &cfg.Redis.Password)
	num("REDIS_DB", &cfg.Redis.DB)
	str("REDIS_PREFIX", &cfg.Redis.Prefix)
	if v, ok := lookup("REDIS_TTL"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%sREDIS_TTL: %w", EnvPrefix, err))
		} else {
			cfg.Redis.TTL = d
		}
	}

	num("HTTP_PORT", &cfg.HTTP.Port)
	if v, ok := lookup("METRICS_ENABLED"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%sMETRICS_ENABLED: %w", EnvPrefix, err))
		} else {
			cfg.Metrics.Enabled = b
		}
	}
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)

	return errors.Join(errs...)
}
