package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	AppPort     string `envconfig:"APP_PORT" default:"8080"`
	JWTSecret   string `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`

	UserBackupFile    string `envconfig:"USER_BACKUP_FILE" default:"users.csv"`
	ProductBackupFile string `envconfig:"PRODUCT_BACKUP_FILE" default:"products_backup.csv"`
	SalesBackupFile   string `envconfig:"SALES_BACKUP_FILE" default:"sales_backup.csv"`

	// Seed admin for an empty users table. Optional; without it the first
	// admin must already exist in the database.
	BootstrapAdminUsername string `envconfig:"BOOTSTRAP_ADMIN_USERNAME"`
	BootstrapAdminPassword string `envconfig:"BOOTSTRAP_ADMIN_PASSWORD"`
}

// Load reads .env when present, then resolves the config from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
