package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the storefront binary reads from the environment.
// A .env file in the working directory is honored for local runs.
type Config struct {
	Addr        string `envconfig:"ADDR" default:":8080"`
	Development bool   `envconfig:"DEV"`

	// Slot persistence. "file" keeps one JSON document per slot under
	// DataDir; "sqlite" keeps them in an embedded database; "memory" is
	// throwaway.
	SlotBackend string `envconfig:"SLOT_BACKEND" default:"file"`
	DataDir     string `envconfig:"DATA_DIR" default:"data"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"data/shopkart.db"`

	// Demo admin gate. Not a security boundary; see internal/identity.
	JWTSecret     string `envconfig:"JWT_SECRET" default:"dev-secret"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@example.com"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"password123"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED"`
	MetricsToken   string `envconfig:"METRICS_TOKEN"`

	PageSize int `envconfig:"PAGE_SIZE" default:"8"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
