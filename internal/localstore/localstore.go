// Package localstore: tarayıcıdaki localStorage'ın karşılığı.
// İsimlendirilmiş kayıtlar ("cart", "theme") tek bir SQLite dosyasında tutulur.
package localstore

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	// Busy timeout + WAL, aynı dosyayı açan ikinci süreç için
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout=5000&_pragma=journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS records (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Get: kayıt yoksa ("", false, nil) döner.
func (s *Store) Get(name string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM records WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) Set(name, value string) error {
	_, err := s.db.Exec(`INSERT INTO records (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`, name, value)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
