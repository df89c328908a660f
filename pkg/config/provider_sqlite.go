package config

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	_ "modernc.org/sqlite"
)

const settingsSchema = `CREATE TABLE IF NOT EXISTS settings (key TEXT PRIMARY KEY, value TEXT NOT NULL)`

// SQLiteProvider implements ConfigProvider for SQLite database configuration.
// Settings are read from a key/value table named settings.
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider. The database
// file is created if it does not exist; use OpenSQLiteProvider to only read.
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	return openSQLite(dbPath, dbPath)
}

// OpenSQLiteProvider opens an existing SQLite configuration database
// read-only. A missing file is an error wrapping fs.ErrNotExist and nothing
// is created on disk.
func OpenSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("SQLite configuration database %s does not exist: %w", dbPath, err)
		}
		return nil, fmt.Errorf("failed to stat SQLite database: %w", err)
	}
	return openSQLite("file:"+dbPath+"?mode=ro", dbPath)
}

func openSQLite(dsn, dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads every row of the settings table on top of the defaults
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	config := Defaults()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan settings row: %w", err)
		}
		if err := applySetting(config, key, value); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	return config, nil
}

// SaveConfig writes every setting of config, creating the settings table if
// needed. Existing keys are replaced.
func (s *SQLiteProvider) SaveConfig(config *ConfigData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(settingsSchema); err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}

	settings := []struct {
		key, value string
	}{
		{"angle_type", config.AngleType},
		{"format", config.Format},
		{"precision", strconv.Itoa(config.Precision)},
		{"segments", strconv.FormatBool(config.Segments)},
		{"debug", strconv.FormatBool(config.Debug)},
	}
	for _, setting := range settings {
		_, err := tx.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, setting.key, setting.value)
		if err != nil {
			return fmt.Errorf("failed to save setting %s: %w", setting.key, err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}

func applySetting(config *ConfigData, key, value string) error {
	var err error
	switch key {
	case "angle_type":
		config.AngleType = value
	case "format":
		config.Format = value
	case "precision":
		config.Precision, err = strconv.Atoi(value)
	case "segments":
		config.Segments, err = strconv.ParseBool(value)
	case "debug":
		config.Debug, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	if err != nil {
		return fmt.Errorf("invalid value %q for setting %s: %w", value, key, err)
	}
	return nil
}
