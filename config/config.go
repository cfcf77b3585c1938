package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string // sqlite or mysql
	Path   string // sqlite file path
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
	ProbeTTL time.Duration
}

type Config struct {
	HTTP  HTTP
	DB    DB
	Redis Redis
	Admin struct {
		Username string
		Password string
	}
	JWT struct {
		Secret string
		Issuer string
		ExpMin int
	}
	Submit struct {
		RetryDelay  time.Duration
		HTTPTimeout time.Duration
	}
	Logging struct {
		Level string
		File  string
	}
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 5000)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "assethook.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "assethook")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.probe_ttl", "24h")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "default")
	v.SetDefault("submit.retry_delay", "10s")
	v.SetDefault("submit.http_timeout", "15s")
	v.SetDefault("logging.level", "info")

	// config file is optional; defaults cover a dev run
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		Redis: Redis{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			ProbeTTL: v.GetDuration("redis.probe_ttl"),
		},
	}
	cfg.Admin.Username = v.GetString("admin.username")
	cfg.Admin.Password = v.GetString("admin.password")
	cfg.JWT.Secret = v.GetString("jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "assethook"
	}
	cfg.JWT.ExpMin = v.GetInt("jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	cfg.Submit.RetryDelay = v.GetDuration("submit.retry_delay")
	if cfg.Submit.RetryDelay <= 0 {
		cfg.Submit.RetryDelay = 10 * time.Second
	}
	cfg.Submit.HTTPTimeout = v.GetDuration("submit.http_timeout")
	if cfg.Submit.HTTPTimeout <= 0 {
		cfg.Submit.HTTPTimeout = 15 * time.Second
	}
	cfg.Logging.Level = v.GetString("logging.level")
	cfg.Logging.File = v.GetString("logging.file")
	return cfg, nil
}
