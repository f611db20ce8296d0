package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

type Config struct {
	Env struct {
		Name        string `koanf:"name"`
		ServiceName string `koanf:"serviceName"`
		Debug       bool   `koanf:"debug"`
	} `koanf:"env"`

	HTTP struct {
		Port         int           `koanf:"port"`
		ReadTimeout  time.Duration `koanf:"readTimeout"`
		WriteTimeout time.Duration `koanf:"writeTimeout"`
		IdleTimeout  time.Duration `koanf:"idleTimeout"`
	} `koanf:"http"`

	DB struct {
		Host         string        `koanf:"host"`
		User         string        `koanf:"user"`
		Password     string        `koanf:"password"`
		Name         string        `koanf:"name"`
		Port         string        `koanf:"port"`
		SSLMode      string        `koanf:"sslmode"`
		QueryTimeout time.Duration `koanf:"queryTimeout"`
	} `koanf:"db"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	// Cache.Backend selects "memory" or "redis" without touching call sites.
	Cache struct {
		Backend string `koanf:"backend"`
	} `koanf:"cache"`

	Auth struct {
		JWTSecret  string `koanf:"jwtSecret"`
		ModelPath  string `koanf:"modelPath"`
		PolicyPath string `koanf:"policyPath"`
	} `koanf:"auth"`

	Kafka struct {
		Brokers []string `koanf:"brokers"`
		Topic   string   `koanf:"topic"`
		GroupID string   `koanf:"groupId"`
	} `koanf:"kafka"`

	Export struct {
		BatchSize  int            `koanf:"batchSize"`
		MaxRows    int            `koanf:"maxRows"`
		PlanRows   map[string]int `koanf:"planRows"`
		DailyQuota int            `koanf:"dailyQuota"`
	} `koanf:"export"`

	RateLimit struct {
		PerSecond float64 `koanf:"perSecond"`
		Burst     int     `koanf:"burst"`
	} `koanf:"rateLimit"`
}

// Load reads config.yaml and applies APP_* environment overrides
// (APP_DB_HOST -> db.host).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 3000
	}
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 15 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		// Exports stream for a while; the write timeout has to cover them.
		c.HTTP.WriteTimeout = 5 * time.Minute
	}
	if c.HTTP.IdleTimeout == 0 {
		c.HTTP.IdleTimeout = 60 * time.Second
	}
	if c.DB.QueryTimeout == 0 {
		c.DB.QueryTimeout = 30 * time.Second
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Export.BatchSize == 0 {
		c.Export.BatchSize = 1000
	}
	if c.Export.MaxRows == 0 {
		c.Export.MaxRows = 50000
	}
	if c.Export.DailyQuota == 0 {
		c.Export.DailyQuota = 20
	}
	if c.RateLimit.PerSecond == 0 {
		c.RateLimit.PerSecond = 20
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 40
	}
}

// DSN builds the postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode,
	)
}
