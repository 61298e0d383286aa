package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type User struct {
	ID         int64
	TelegramID int64
	ChatID     int64
	Username   *string
	FirstName  *string
	LastName   *string
	Lang       string
}

func UpsertUser(db *sql.DB, u *User) error {
	_, err := db.Exec(`
INSERT INTO users (telegram_id, chat_id, username, first_name, last_name)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(telegram_id) DO UPDATE SET
  chat_id=excluded.chat_id,
  username=excluded.username,
  first_name=excluded.first_name,
  last_name=excluded.last_name;
`, u.TelegramID, u.ChatID, u.Username, u.FirstName, u.LastName)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func GetUserLangByTelegramID(db *sql.DB, telegramID int64) (string, bool, error) {
	row := db.QueryRow(`SELECT lang FROM users WHERE telegram_id = ?`, telegramID)
	var s sql.NullString
	if err := row.Scan(&s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return "", false, nil
	}
	return strings.TrimSpace(s.String), true, nil
}

// SetUserLangByTelegramID also creates the user: a language callback can
// arrive before any message was stored. For private chats chat_id equals
// the user id.
func SetUserLangByTelegramID(db *sql.DB, telegramID int64, lang string) error {
	_, err := db.Exec(`
INSERT INTO users (telegram_id, chat_id, lang)
VALUES (?, ?, ?)
ON CONFLICT(telegram_id) DO UPDATE SET lang=excluded.lang;
`, telegramID, telegramID, lang)
	if err != nil {
		return fmt.Errorf("set user lang: %w", err)
	}
	return nil
}

func CountUsers(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// UserLangs adapts the lang column to i18n.Persister.
type UserLangs struct {
	DB *sql.DB
}

func (u UserLangs) GetUserLang(telegramID int64) (string, bool, error) {
	return GetUserLangByTelegramID(u.DB, telegramID)
}

func (u UserLangs) SetUserLang(telegramID int64, lang string) error {
	return SetUserLangByTelegramID(u.DB, telegramID, lang)
}
