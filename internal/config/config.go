package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Backend names the storage behind the entries slot.
type Backend string

const (
	BackendFile     Backend = "file"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

type Config struct {
	Port     string
	LogLevel string

	StorageBackend Backend
	StorageDir     string
	SQLitePath     string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
}

// ProcessEnvironmentVariables builds the config from defaults, a .env file in
// the working directory when one exists, and the process environment.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// Defaults keep everything local; the postgres ones match the docker compose setup
	env := Config{
		Port:     "9446",
		LogLevel: "info",

		StorageBackend: BackendFile,
		StorageDir:     "./data",
		SQLitePath:     "./data/finance_notebook.db",

		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
	}

	overrides := map[string]*string{
		"PORT":              &env.Port,
		"LOG_LEVEL":         &env.LogLevel,
		"STORAGE_DIR":       &env.StorageDir,
		"SQLITE_PATH":       &env.SQLitePath,
		"POSTGRES_ADDRESS":  &env.PostgresAddress,
		"POSTGRES_PORT":     &env.PostgresPort,
		"POSTGRES_DB":       &env.PostgresDB,
		"POSTGRES_USERNAME": &env.PostgresUsername,
		"POSTGRES_PASSWORD": &env.PostgresPassword,
	}
	for key, target := range overrides {
		if value := os.Getenv(key); len(value) != 0 {
			*target = value
		}
	}

	if backend := os.Getenv("STORAGE_BACKEND"); len(backend) != 0 {
		env.StorageBackend = Backend(strings.ToLower(backend))
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate reports every problem at once rather than the first one.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	switch c.StorageBackend {
	case BackendFile:
		if c.StorageDir == "" {
			problems = append(problems, "storage dir cannot be empty when using file backend")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLite path cannot be empty when using sqlite backend")
		}
	case BackendPostgres:
		if c.PostgresAddress == "" || c.PostgresDB == "" {
			problems = append(problems, "postgres address and database are required when using postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend '%s': must be one of %v",
			c.StorageBackend, []Backend{BackendFile, BackendSQLite, BackendPostgres}))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// PostgresConnectionString builds the lib/pq DSN.
func (c *Config) PostgresConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
