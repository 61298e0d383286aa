package storage

import (
	"database/sql"
	"fmt"
	"time"
)

const (
	LeadSourceContact = "contact" // shared via the request_contact button
	LeadSourceText    = "text"    // typed as a message
)

type Lead struct {
	ID         int64
	Number     int64
	TelegramID int64
	ChatID     int64
	Username   *string
	FullName   string
	Contact    string
	Source     string
	Lang       string
	CreatedAt  time.Time
}

func AddLead(db *sql.DB, l *Lead) (int64, error) {
	res, err := db.Exec(`
INSERT INTO leads (number, telegram_id, chat_id, username, full_name, contact, source, lang)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`, l.Number, l.TelegramID, l.ChatID, l.Username, l.FullName, l.Contact, l.Source, l.Lang)
	if err != nil {
		return 0, fmt.Errorf("add lead: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add lead: %w", err)
	}
	return id, nil
}

// ListLeads returns the newest leads first. limit <= 0 means all.
func ListLeads(db *sql.DB, limit int) ([]Lead, error) {
	q := `
SELECT id, number, telegram_id, chat_id, username, full_name, contact, source, lang, created_at
FROM leads
ORDER BY number DESC`
	args := []any{}
	if limit > 0 {
		q += `
LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var (
			l        Lead
			username sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.Number, &l.TelegramID, &l.ChatID, &username,
			&l.FullName, &l.Contact, &l.Source, &l.Lang, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		if username.Valid {
			s := username.String
			l.Username = &s
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
