package credential

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLite persists credentials in a SQLite database, one row per (host,
// device name) registration. Suited for callers that control several TVs
// from one machine and want a single credential location.
type SQLite struct {
	db         *sql.DB
	host       string
	deviceName string
}

// NewSQLite opens (and if needed initializes) the database at dbPath and
// returns a store scoped to one TV and registration nickname.
func NewSQLite(dbPath, host, deviceName string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential database: %w", err)
	}

	store := &SQLite{
		db:         db,
		host:       host,
		deviceName: deviceName,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) initSchema() error {
	query := `CREATE TABLE IF NOT EXISTS credentials (
		host TEXT NOT NULL,
		device_name TEXT NOT NULL,
		token TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (host, device_name)
	)`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// Get returns the stored token for this host and device name, or
// ErrNotFound if this client never paired.
func (s *SQLite) Get() (string, error) {
	var token string
	err := s.db.QueryRow(
		`SELECT token FROM credentials WHERE host = ? AND device_name = ?`,
		s.host, s.deviceName,
	).Scan(&token)

	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query credential: %w", err)
	}
	if token == "" {
		return "", ErrNotFound
	}

	return token, nil
}

// Set upserts the token for this host and device name.
func (s *SQLite) Set(token string) error {
	_, err := s.db.Exec(
		`INSERT INTO credentials (host, device_name, token, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (host, device_name)
		 DO UPDATE SET token = excluded.token, updated_at = CURRENT_TIMESTAMP`,
		s.host, s.deviceName, token,
	)
	if err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	return nil
}

// Clear removes the credential row for this host and device name.
func (s *SQLite) Clear() error {
	_, err := s.db.Exec(
		`DELETE FROM credentials WHERE host = ? AND device_name = ?`,
		s.host, s.deviceName,
	)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}

	return nil
}
