// Package config loads the jsquery command configuration from defaults, an
// optional YAML or TOML file, JSQUERY_* environment variables and flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/aretw0/jsquery/internal/logging"
	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/jscode"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables, e.g. JSQUERY_SERVE_PORT.
const EnvPrefix = "JSQUERY"

// Config is the full command configuration.
type Config struct {
	LogLevel      string       `mapstructure:"log_level"`
	LogFormat     string       `mapstructure:"log_format"`
	Catalog       string       `mapstructure:"catalog"`
	JQueryVersion string       `mapstructure:"jquery_version"`
	Render        RenderConfig `mapstructure:"render"`
	Serve         ServeConfig  `mapstructure:"serve"`
}

// RenderConfig controls the generated JavaScript.
type RenderConfig struct {
	Pretty   bool   `mapstructure:"pretty"`
	Indent   string `mapstructure:"indent"`
	Comments bool   `mapstructure:"comments"`
	// Dollar selects $ over jQuery as the function name.
	Dollar bool `mapstructure:"dollar"`
}

// ServeConfig configures the HTTP and MCP services.
type ServeConfig struct {
	Port          int           `mapstructure:"port"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	CachePrefix   string        `mapstructure:"cache_prefix"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	CacheSize     int           `mapstructure:"cache_size"`
	LockTTL       time.Duration `mapstructure:"lock_ttl"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("catalog", "")
	v.SetDefault("jquery_version", "")

	v.SetDefault("render.pretty", false)
	v.SetDefault("render.indent", "  ")
	v.SetDefault("render.comments", false)
	v.SetDefault("render.dollar", true)

	v.SetDefault("serve.port", 8080)
	v.SetDefault("serve.redis_addr", "")
	v.SetDefault("serve.redis_password", "")
	v.SetDefault("serve.redis_db", 0)
	v.SetDefault("serve.cache_prefix", "jsquery:render:")
	v.SetDefault("serve.cache_ttl", 24*time.Hour)
	v.SetDefault("serve.cache_size", 10000)
	v.SetDefault("serve.lock_ttl", 10*time.Second)
}

// NewViper returns a Viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the optional config file at path into v and decodes the result.
// The file type follows the extension (.yaml, .yml, .toml, .json).
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &c, nil
}

// Settings returns the printer settings of the render section.
func (c *Config) Settings() jscode.Settings {
	if !c.Render.Pretty {
		s := jscode.Minimal()
		s.Comments = c.Render.Comments
		return s
	}
	s := jscode.Pretty()
	s.IndentString = c.Render.Indent
	s.Comments = c.Render.Comments
	return s
}

// LoadCatalog returns the configured catalog, restricted to JQueryVersion when set.
func (c *Config) LoadCatalog() (*jqapi.Catalog, error) {
	cat := jqapi.Default()
	if c.Catalog != "" {
		var err error
		if cat, err = jqapi.LoadFile(c.Catalog); err != nil {
			return nil, err
		}
	}
	if c.JQueryVersion != "" {
		v, err := semver.NewVersion(c.JQueryVersion)
		if err != nil {
			return nil, fmt.Errorf("invalid jquery version %q: %w", c.JQueryVersion, err)
		}
		cat = cat.ForVersion(v)
	}
	return cat, nil
}

// Logger builds the logger for the log section. It writes to stderr.
func (c *Config) Logger() (*slog.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(os.Stderr, level, format), nil
}
