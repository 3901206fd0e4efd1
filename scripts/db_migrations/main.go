package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/finance-notebook/internal/config"
	"github.com/carson-networks/finance-notebook/internal/storage/sqlconfig"
)

// Applies the entry slot migrations for the configured SQL backend without
// starting the server.
func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	var dialect sqlconfig.Dialect
	var dsn string
	switch env.StorageBackend {
	case server_config.BackendSQLite:
		dialect, dsn = sqlconfig.DialectSQLite, env.SQLitePath
	case server_config.BackendPostgres:
		dialect, dsn = sqlconfig.DialectPostgres, env.PostgresConnectionString()
	default:
		logrus.WithField("backend", env.StorageBackend).Info("Backend has no migrations")
		return
	}

	migrationStatus, err := sqlconfig.RunMigrations(dialect, dsn)
	if err != nil {
		logrus.WithError(err).Fatal("sqlconfig.RunMigrations")
		return
	}

	logrus.WithFields(logrus.Fields{
		"dialect":              dialect,
		"preMigrationVersion":  migrationStatus.PreMigrationVersion,
		"postMigrationVersion": migrationStatus.PostMigrationVersion,
	}).Info("Migration status")
}
