package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the configuration from the environment. Variables from a
// local .env file are loaded first and never override the real
// environment.
func Load() App {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not read .env", "err", err)
	}

	cfg := App{
		Port:             getenv("APP_PORT", getenv("PORT", "8080")),
		DatabaseURL:      must("DATABASE_URL"),
		Env:              getenv("APP_ENV", "dev"),
		DBMaxConns:       getint32("DB_MAX_CONNS", 8),
		DBMinConns:       getint32("DB_MIN_CONNS", 2),
		DBConnectTimeout: getduration("DB_CONNECT_TIMEOUT", 5*time.Second),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint32(k string, def int32) int32 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n < 0 {
		slog.Warn("invalid env value, using default", "key", k, "value", v, "default", def)
		return def
	}
	return int32(n)
}

func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		slog.Warn("invalid env value, using default", "key", k, "value", v, "default", def)
		return def
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
