package config

import "time"

type App struct {
	Port             string        `env:"APP_PORT" default:"8080"`
	DatabaseURL      string        `env:"DATABASE_URL,required"`
	Env              string        `env:"APP_ENV" default:"dev"`
	DBMaxConns       int32         `env:"DB_MAX_CONNS" default:"8"`
	DBMinConns       int32         `env:"DB_MIN_CONNS" default:"2"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" default:"5s"`
}
