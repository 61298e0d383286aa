package storage

import (
	"database/sql"
	"fmt"
)

// NextLeadNumber reserves the next lead number in one statement, so the
// polling and webhook processes may share the database. modernc's bundled
// SQLite always supports RETURNING.
func NextLeadNumber(db *sql.DB) (int64, error) {
	var num int64
	err := db.QueryRow(
		`UPDATE lead_seq SET next_num = next_num + 1 WHERE id = 1 RETURNING next_num - 1`,
	).Scan(&num)
	if err != nil {
		return 0, fmt.Errorf("reserve lead number: %w", err)
	}
	return num, nil
}
