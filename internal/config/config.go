package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/MikeMC777/parana-browser/internal/store"
)

const (
	EnvParanaPath = "PARANA_DB_PATH"
	EnvOlistPath  = "OLIST_DB_PATH"
)

type Config struct {
	Driver     string
	ParanaPath string
	OlistPath  string
	ParanaDSN  string
	OlistDSN   string
	APIAddr    string
	LogLevel   string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	return Config{
		Driver:     getenv("DB_DRIVER", store.DriverSQLite),
		ParanaPath: getenv(EnvParanaPath, "data/parana.db"),
		OlistPath:  getenv(EnvOlistPath, "data/olist.db"),
		ParanaDSN:  getenv("PARANA_DB_DSN", ""),
		OlistDSN:   getenv("OLIST_DB_DSN", ""),
		APIAddr:    getenv("API_ADDR", ":8080"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
	}
}

// Parana is the connection target for the shopper dataset.
func (c Config) Parana() store.Target {
	return c.target("parana", c.ParanaPath, c.ParanaDSN)
}

// Olist is the connection target for the Olist dataset.
func (c Config) Olist() store.Target {
	return c.target("olist", c.OlistPath, c.OlistDSN)
}

func (c Config) target(name, path, dsn string) store.Target {
	if c.Driver == store.DriverPgx {
		return store.Target{Name: name, Driver: store.DriverPgx, DSN: dsn}
	}
	return store.Target{Name: name, Driver: store.DriverSQLite, DSN: path}
}

// Log writes the resolved values at debug level. DSNs are left out.
func (c Config) Log(l zerolog.Logger) {
	l.Debug().
		Str("driver", c.Driver).
		Str(EnvParanaPath, c.ParanaPath).
		Str(EnvOlistPath, c.OlistPath).
		Str("api_addr", c.APIAddr).
		Msg("[config] resolved")
}
