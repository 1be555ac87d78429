package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Database holds the MySQL connection settings used by the export command
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// LoadEnv loads <project>/.env (when present) and applies BALPATH_SEED.
// Variables already set in the process environment win over the file.
func (c *Config) LoadEnv() error {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envPath, err)
	}

	if raw := strings.TrimSpace(os.Getenv(SeedEnv)); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", SeedEnv, raw, err)
		}
		c.Seed = seed
	}
	return nil
}

// GetDatabase returns the MySQL settings from the environment
func (c *Config) GetDatabase() Database {
	return Database{
		Host:     envOr("DB_HOST", "127.0.0.1"),
		Port:     envOr("DB_PORT", "3306"),
		User:     envOr("DB_USERNAME", "root"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     envOr("DB_DATABASE", "balpath"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
