package storage

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite"
)

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", withSQLiteParams(path))
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func withSQLiteParams(path string) string {
	// polling and webhook processes may share one file
	q := url.Values{}
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "foreign_keys(1)")

	return fmt.Sprintf("%s?%s", path, q.Encode())
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  telegram_id INTEGER NOT NULL UNIQUE,
  chat_id     INTEGER NOT NULL,
  username    TEXT,
  first_name  TEXT,
  last_name   TEXT,
  lang        TEXT,
  created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS leads (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  number      INTEGER NOT NULL UNIQUE,
  telegram_id INTEGER NOT NULL,
  chat_id     INTEGER NOT NULL,
  username    TEXT,
  full_name   TEXT NOT NULL DEFAULT '',
  contact     TEXT NOT NULL,
  source      TEXT NOT NULL,
  lang        TEXT NOT NULL DEFAULT '',
  created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS lead_seq (
  id       INTEGER PRIMARY KEY CHECK (id = 1),
  next_num INTEGER NOT NULL
);
INSERT OR IGNORE INTO lead_seq (id, next_num) VALUES (1, 1);
`)
	return err
}
