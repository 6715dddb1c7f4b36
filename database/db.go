package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"prms/backend/security"
)

// DB wraps the sqlite handle that stores the serialized state blob. The
// store keeps the live collections in memory; sqlite only holds the
// single current snapshot (and its history of timestamped backups).
type DB struct {
	conn   *sql.DB
	cipher *security.Cipher
}

// Open opens (or creates) the snapshot database at path. An optional
// cipher encrypts blobs at rest; pass nil to store them as plain JSON.
func Open(path string, cipher *security.Cipher) (*DB, error) {
	// Connection parameters to better handle concurrency
	dsn := path + "?_journal=WAL&_timeout=10000&_busy_timeout=10000"
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(time.Minute * 5)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		conn.Close()
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	createSnapshotsTable := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data BLOB NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	if _, err := conn.Exec(createSnapshotsTable); err != nil {
		conn.Close()
		return nil, err
	}

	createBackupsTable := `
	CREATE TABLE IF NOT EXISTS snapshot_backups (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		data BLOB NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	if _, err := conn.Exec(createBackupsTable); err != nil {
		conn.Close()
		return nil, err
	}

	return &DB{conn: conn, cipher: cipher}, nil
}

// LoadSnapshot returns the current state blob, or nil when no snapshot
// has been written yet.
func (d *DB) LoadSnapshot() ([]byte, error) {
	var data []byte
	err := d.conn.QueryRow("SELECT data FROM snapshots WHERE id = 1").Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if d.cipher != nil {
		plain, err := d.cipher.Decrypt(data)
		if err != nil {
			return nil, fmt.Errorf("decrypt snapshot: %w", err)
		}
		return plain, nil
	}
	return data, nil
}

// SaveSnapshot replaces the current state blob atomically.
func (d *DB) SaveSnapshot(data []byte) error {
	if d.cipher != nil {
		sealed, err := d.cipher.Encrypt(data)
		if err != nil {
			return fmt.Errorf("encrypt snapshot: %w", err)
		}
		data = sealed
	}
	_, err := d.conn.Exec(`
		INSERT INTO snapshots (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, data, time.Now())
	return err
}

// BackupSnapshot copies the current blob into the backup table. Used by
// the periodic checkpoint service.
func (d *DB) BackupSnapshot() error {
	var data []byte
	err := d.conn.QueryRow("SELECT data FROM snapshots WHERE id = 1").Scan(&data)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = d.conn.Exec("INSERT INTO snapshot_backups (data, created_at) VALUES (?, ?)", data, time.Now())
	return err
}

// Reset deletes the stored snapshot so the next boot starts from an
// empty, freshly seeded state.
func (d *DB) Reset() error {
	_, err := d.conn.Exec("DELETE FROM snapshots")
	return err
}

// Close releases the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}
