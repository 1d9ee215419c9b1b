package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Search   SearchConfig   `yaml:"search"`
	Redis    RedisConfig    `yaml:"redis"`
	Activity ActivityConfig `yaml:"activity"`
}

type ServerConfig struct {
	Host            string `yaml:"host"`
	Port            string `yaml:"port"`
	Mode            string `yaml:"mode"`             // debug, release, test
	ShutdownTimeout int    `yaml:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, mysql, postgres
	DSN    string `yaml:"dsn"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Empty query policies for GET /search.
const (
	EmptyQueryNone = "none"
	EmptyQueryAll  = "all"
)

type SearchConfig struct {
	EmptyQuery string  `yaml:"empty_query"` // none, all
	RateLimit  float64 `yaml:"rate_limit"`  // requests per second per IP, 0 disables
	RateBurst  int     `yaml:"rate_burst"`
}

// RedisConfig for the optional async activity queue
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ActivityConfig struct {
	RetentionDays int    `yaml:"retention_days"` // <= 0 keeps everything
	CleanupCron   string `yaml:"cleanup_cron"`
}

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}
		// Unmarshal over the defaults so a partial file keeps the rest.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.overrideFromEnv()
	cfg.normalize()
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "3000",
			Mode:            "debug",
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "projectboard.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Search: SearchConfig{
			EmptyQuery: EmptyQueryNone,
			RateLimit:  10,
			RateBurst:  20,
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
			DB:      0,
		},
		Activity: ActivityConfig{
			RetentionDays: 90,
			CleanupCron:   "0 3 * * *",
		},
	}
}

func (c *Config) overrideFromEnv() {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	// PORT is what most PaaS runtimes inject; SERVER_PORT wins when both are set.
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if policy := os.Getenv("SEARCH_EMPTY_QUERY"); policy != "" {
		c.Search.EmptyQuery = policy
	}
	if days := os.Getenv("ACTIVITY_RETENTION_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			c.Activity.RetentionDays = n
		}
	}
	// Redis URL override (format: redis://:password@host:port/db)
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.Enabled = true
		c.parseRedisURL(redisURL)
	}
}

func (c *Config) normalize() {
	c.Search.EmptyQuery = strings.ToLower(strings.TrimSpace(c.Search.EmptyQuery))
	if c.Search.EmptyQuery != EmptyQueryAll {
		c.Search.EmptyQuery = EmptyQueryNone
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10
	}
}

// parseRedisURL parses a Redis URL and sets config values
// Format: redis://:password@host:port/db
func (c *Config) parseRedisURL(redisURL string) {
	url := strings.TrimPrefix(redisURL, "redis://")

	if atIdx := strings.Index(url, "@"); atIdx != -1 {
		authPart := url[:atIdx]
		url = url[atIdx+1:]
		// Password format: :password or user:password
		if colonIdx := strings.Index(authPart, ":"); colonIdx != -1 {
			c.Redis.Password = authPart[colonIdx+1:]
		}
	}

	if slashIdx := strings.LastIndex(url, "/"); slashIdx != -1 {
		dbStr := url[slashIdx+1:]
		url = url[:slashIdx]
		if db, err := strconv.Atoi(dbStr); err == nil {
			c.Redis.DB = db
		}
	}

	c.Redis.Addr = url
}

func (c *Config) Save(configPath string) error {
	if configPath == "" {
		configPath = "config.yaml"
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
