package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"regexp"
	"time"

	"github.com/go-sql-driver/mysql"

	"balpath/internal/config"
	"balpath/internal/domain"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// MySQLExporter writes a manifest into a MySQL table, one row per path
type MySQLExporter struct {
	db    config.Database
	table string
}

// NewMySQLExporter creates an exporter for the given connection settings and table
func NewMySQLExporter(db config.Database, table string) (*MySQLExporter, error) {
	if !IsValidTableName(table) {
		return nil, fmt.Errorf("invalid table name: %q", table)
	}
	return &MySQLExporter{db: db, table: table}, nil
}

// IsValidTableName allows plain identifiers only, since the name is interpolated into DDL
func IsValidTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}

// DSN returns the driver connection string
func (e *MySQLExporter) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = e.db.User
	cfg.Passwd = e.db.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(e.db.Host, e.db.Port)
	cfg.DBName = e.db.Name
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// Export replaces the rows of a previous export of the same run
// and inserts every entry in stream order inside one transaction.
func (e *MySQLExporter) Export(ctx context.Context, manifest *domain.Manifest) (int, error) {
	db, err := sql.Open("mysql", e.DSN())
	if err != nil {
		return 0, fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return 0, fmt.Errorf("failed to ping database server: %w", err)
	}

	if _, err := db.ExecContext(ctx, e.createTableSQL()); err != nil {
		return 0, fmt.Errorf("failed to create table %s: %w", e.table, err)
	}

	runAt, err := time.Parse(time.RFC3339, manifest.Meta.Timestamp)
	if err != nil {
		runAt = time.Now()
	}
	runID := RunKey(manifest)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM `%s` WHERE run_id = ?", e.table), runID); err != nil {
		return 0, fmt.Errorf("clear previous export: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, e.insertSQL())
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range manifest.Paths {
		if _, err := stmt.ExecContext(ctx, runID, runAt, manifest.Meta.Seed, entry.Position, entry.Path, entry.Label); err != nil {
			return 0, fmt.Errorf("insert %s: %w", entry.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit export: %w", err)
	}
	return len(manifest.Paths), nil
}

func (e *MySQLExporter) createTableSQL() string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
		"run_id VARCHAR(64) NOT NULL, "+
		"run_at DATETIME NOT NULL, "+
		"seed BIGINT NOT NULL, "+
		"position INT NOT NULL, "+
		"path VARCHAR(2048) NOT NULL, "+
		"label VARCHAR(255) NOT NULL, "+
		"PRIMARY KEY (run_id, position))", e.table)
}

func (e *MySQLExporter) insertSQL() string {
	return fmt.Sprintf("INSERT INTO `%s` (run_id, run_at, seed, position, path, label) VALUES (?, ?, ?, ?, ?, ?)", e.table)
}

// RunKey returns the manifest's run id. Manifests written before run ids
// existed fall back to timestamp and seed.
func RunKey(manifest *domain.Manifest) string {
	if manifest.Meta.RunID != "" {
		return manifest.Meta.RunID
	}
	return fmt.Sprintf("%s-%d", manifest.Meta.Timestamp, manifest.Meta.Seed)
}
