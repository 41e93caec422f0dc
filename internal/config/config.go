package config

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/trimly-app/survey-api/internal/utils"
)

// Config carries every environment knob the server reads. Defaults match a
// local dev setup so the binary starts with nothing configured.
type Config struct {
	Addr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// MigrationsDir overrides the embedded migration files when set.
	MigrationsDir string

	AdminUsername string
	AdminPassword string
}

// Load reads configuration from the environment after a best-effort load of
// .env.local and .env files.
func Load() *Config {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	return &Config{
		Addr:          utils.SafeEnv("TRIMLY_ADDR", ":8080"),
		DBHost:        utils.SafeEnv("DB_HOST", "localhost"),
		DBPort:        utils.SafeEnv("DB_PORT", "3306"),
		DBUser:        utils.SafeEnv("DB_USER", "root"),
		DBPassword:    utils.SafeEnv("DB_PASSWORD", ""),
		DBName:        utils.SafeEnv("DB_NAME", "defaultdb"),
		MigrationsDir: utils.SafeEnv("TRIMLY_MIGRATIONS_DIR", ""),
		AdminUsername: utils.SafeEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: utils.SafeEnv("ADMIN_PASSWORD", "trimly2025"),
	}
}

// DSN renders the MySQL connection string. parseTime makes TIMESTAMP columns
// scan as time.Time; multiStatements lets one migration file hold several
// statements.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
