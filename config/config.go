package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"recipe-browser/pkg/markup"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Recipe browser specifics
	Recipes RecipesConfig
	Render  RenderConfig
	Cache   CacheConfig
	Photo   PhotoConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	PerMin int // 0 disables the limiter
}

// RecipesConfig locates the data file. Source is a path or an http(s) URL.
type RecipesConfig struct {
	Source       string
	FetchTimeout time.Duration
}

type RenderConfig struct {
	DescriptionPolicy markup.Policy
	PhotoProxy        bool
}

// CacheConfig sizes the visible-set memo.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type PhotoConfig struct {
	DefaultHeight int
	FetchTimeout  time.Duration
	CacheSize     int
	CacheTTL      time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/recipe-browser/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/recipe-browser/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build()
}

func build() (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Recipes
	cfg.Recipes.Source = strings.TrimSpace(viper.GetString("recipes.source"))
	cfg.Recipes.FetchTimeout = viper.GetDuration("recipes.fetch_timeout")

	policy, err := markup.ParsePolicy(viper.GetString("render.description_policy"))
	if err != nil {
		return nil, err
	}
	cfg.Render.DescriptionPolicy = policy
	cfg.Render.PhotoProxy = viper.GetBool("render.photo_proxy")

	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	cfg.Photo.DefaultHeight = viper.GetInt("photo.default_height")
	cfg.Photo.FetchTimeout = viper.GetDuration("photo.fetch_timeout")
	cfg.Photo.CacheSize = viper.GetInt("photo.cache_size")
	cfg.Photo.CacheTTL = viper.GetDuration("photo.cache_ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("rate_limit.per_min", 600)

	viper.SetDefault("recipes.source", "./data/recipes.json")
	viper.SetDefault("recipes.fetch_timeout", "15s")
	viper.SetDefault("render.description_policy", string(markup.PolicySanitize))
	viper.SetDefault("render.photo_proxy", true)
	viper.SetDefault("cache.size", 256)
	viper.SetDefault("cache.ttl", "10m")

	viper.SetDefault("photo.default_height", 300)
	viper.SetDefault("photo.fetch_timeout", "10s")
	viper.SetDefault("photo.cache_size", 128)
	viper.SetDefault("photo.cache_ttl", "1h")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", cfg.HTTPServer.Port)
	}
	if cfg.Recipes.Source == "" {
		return fmt.Errorf("recipes.source is required")
	}
	if cfg.RateLimit.PerMin < 0 {
		return fmt.Errorf("rate_limit.per_min must not be negative")
	}
	return nil
}

// splitList splits a comma-separated value since viper might not parse
// arrays seamlessly from env.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// IsRemote reports whether the recipes source is an http(s) URL.
func (c RecipesConfig) IsRemote() bool {
	s := strings.ToLower(c.Source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
