package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env         string `yaml:"env"`
	ListenAddr  string `yaml:"listen_addr"`
	DatabaseURL string `yaml:"database_url"`
	AutoMigrate bool   `yaml:"auto_migrate"`
	JWTSecret   string `yaml:"jwt_secret"`
	// CORSOrigins is a comma separated list; "*" allows any origin.
	CORSOrigins string `yaml:"cors_origins"`
	RedisURL    string `yaml:"redis_url"`

	OutboxWorkers     int `yaml:"outbox_workers"`
	OutboxPollMS      int `yaml:"outbox_poll_ms"`
	OutboxMaxAttempts int `yaml:"outbox_max_attempts"`

	ConsentDir string `yaml:"consent_dir"`
	// ConsentBaseURL prefixes consent links, e.g. https://api.example.org.
	// Empty keeps them relative to the API root.
	ConsentBaseURL string `yaml:"consent_base_url"`
}

func defaults() Config {
	return Config{
		Env:               "development",
		ListenAddr:        ":8080",
		AutoMigrate:       true,
		CORSOrigins:       "*",
		OutboxWorkers:     2,
		OutboxPollMS:      500,
		OutboxMaxAttempts: 5,
		ConsentDir:        "./consent",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

// Load starts from defaults, applies the YAML file named by CONFIG_FILE and
// then the environment. The returned error is a warning about defaulted
// values; the config is usable either way unless Validate rejects it.
func Load() (Config, error) {
	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}

	cfg.Env = getenv("APP_ENV", cfg.Env)
	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.AutoMigrate = getenvBool("AUTO_MIGRATE", cfg.AutoMigrate)
	cfg.JWTSecret = getenv("JWT_SECRET", cfg.JWTSecret)
	cfg.CORSOrigins = getenv("CORS_ORIGINS", cfg.CORSOrigins)
	cfg.RedisURL = getenv("REDIS_URL", cfg.RedisURL)
	cfg.OutboxWorkers = getenvInt("OUTBOX_WORKERS", cfg.OutboxWorkers)
	cfg.OutboxPollMS = getenvInt("OUTBOX_POLL_MS", cfg.OutboxPollMS)
	cfg.OutboxMaxAttempts = getenvInt("OUTBOX_MAX_ATTEMPTS", cfg.OutboxMaxAttempts)
	cfg.ConsentDir = getenv("CONSENT_DIR", cfg.ConsentDir)
	cfg.ConsentBaseURL = getenv("CONSENT_BASE_URL", cfg.ConsentBaseURL)

	var warn []error
	if cfg.DatabaseURL == "" {
		// Not fatal: the in-memory store is used instead.
		warn = append(warn, errors.New("DATABASE_URL not set, using in-memory store"))
	}
	if cfg.RedisURL == "" {
		warn = append(warn, errors.New("REDIS_URL not set, notifications are kept in memory"))
	}
	return cfg, errors.Join(warn...)
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c Config) Development() bool { return c.Env == "development" }

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.OutboxPollMS) * time.Millisecond
}

// Origins splits CORSOrigins into the list go-chi/cors expects.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// EnsureJWTSecret fills an empty JWT secret with a random one in
// development. Tokens signed with it stop verifying on restart.
func (c *Config) EnsureJWTSecret() (generated bool, err error) {
	if c.JWTSecret != "" || !c.Development() {
		return false, nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return false, fmt.Errorf("generate jwt secret: %w", err)
	}
	c.JWTSecret = hex.EncodeToString(buf)
	return true, nil
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.ListenAddr == "" {
		errs = append(errs, errors.New("LISTEN_ADDR is empty"))
	}
	if c.JWTSecret == "" && !c.Development() {
		errs = append(errs, errors.New("JWT_SECRET is required outside development"))
	}
	if c.OutboxWorkers < 0 {
		errs = append(errs, fmt.Errorf("OUTBOX_WORKERS must be >= 0, got %d", c.OutboxWorkers))
	}
	if c.OutboxPollMS <= 0 {
		errs = append(errs, fmt.Errorf("OUTBOX_POLL_MS must be > 0, got %d", c.OutboxPollMS))
	}
	if c.OutboxMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("OUTBOX_MAX_ATTEMPTS must be >= 1, got %d", c.OutboxMaxAttempts))
	}
	if c.ConsentDir == "" {
		errs = append(errs, errors.New("CONSENT_DIR is empty"))
	}
	return errors.Join(errs...)
}
