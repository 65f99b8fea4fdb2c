// Package config reads server settings from flags, falling back to MINDMATES_* environment
// variables and an optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds server settings.
type Config struct {
	Addr        string
	DSN         string // empty: in-memory repositories
	JWTKey      string
	AccessTTL   time.Duration
	TLSCert     string // empty cert and key: plaintext listener
	TLSKey      string
	Dev         bool
	MetricsAddr string // empty: metrics listener disabled

	LLMEndpoint string // empty: always use local fallbacks
	LLMTimeout  time.Duration
	CacheSize   int
	RedisAddr   string // empty: in-process LRU cache

	DailyCron  string
	DailyCount int
}

// Load parses args (without the program name). envFile is loaded first when it exists;
// variables already set in the environment win over it.
func Load(args []string, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var c Config
	set := flag.NewFlagSet("mindmates-server", flag.ContinueOnError)
	set.StringVar(&c.Addr, "addr", envString("MINDMATES_ADDR", ":8443"), "listen address")
	set.StringVar(&c.DSN, "dsn", envString("MINDMATES_DSN", ""), "PostgreSQL DSN (empty: in-memory)")
	set.StringVar(&c.JWTKey, "jwt-key", envString("MINDMATES_JWT_KEY", ""), "HS256 signing key (required)")
	set.DurationVar(&c.AccessTTL, "access-ttl", envDuration("MINDMATES_ACCESS_TTL", 24*time.Hour), "access token TTL")
	set.StringVar(&c.TLSCert, "tls-cert", envString("MINDMATES_TLS_CERT", ""), "TLS certificate (PEM)")
	set.StringVar(&c.TLSKey, "tls-key", envString("MINDMATES_TLS_KEY", ""), "TLS private key (PEM)")
	set.BoolVar(&c.Dev, "dev", envBool("MINDMATES_DEV", false), "enable server reflection (dev only)")
	set.StringVar(&c.MetricsAddr, "metrics-addr", envString("MINDMATES_METRICS_ADDR", ":9090"), "Prometheus listen address")
	set.StringVar(&c.LLMEndpoint, "llm-endpoint", envString("MINDMATES_LLM_ENDPOINT", ""), "text generation endpoint")
	set.DurationVar(&c.LLMTimeout, "llm-timeout", envDuration("MINDMATES_LLM_TIMEOUT", 10*time.Second), "text generation timeout")
	set.IntVar(&c.CacheSize, "cache-size", envInt("MINDMATES_CACHE_SIZE", 1024), "prompt cache entries")
	set.StringVar(&c.RedisAddr, "redis-addr", envString("MINDMATES_REDIS_ADDR", ""), "Redis address for the prompt cache")
	set.StringVar(&c.DailyCron, "daily-cron", envString("MINDMATES_DAILY_CRON", "5 0 * * *"), "daily challenge refresh schedule (UTC)")
	set.IntVar(&c.DailyCount, "daily-count", envInt("MINDMATES_DAILY_COUNT", 3), "daily challenges per rotation")
	if err := set.Parse(args); err != nil {
		return Config{}, err
	}
	return c, c.validate()
}

func (c Config) validate() error {
	switch {
	case c.JWTKey == "":
		return errors.New("missing jwt signing key (--jwt-key)")
	case (c.TLSCert == "") != (c.TLSKey == ""):
		return errors.New("tls-cert and tls-key must be set together")
	case c.AccessTTL <= 0:
		return errors.New("access-ttl must be positive")
	case c.DailyCount <= 0:
		return errors.New("daily-count must be positive")
	}
	return nil
}

// TLS reports whether the listener serves TLS.
func (c Config) TLS() bool { return c.TLSCert != "" }

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return def
}
