package storage

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "bot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func TestOpen_MigrateTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.db")
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	n, err := NextLeadNumber(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUserLang(t *testing.T) {
	db := openTestDB(t)

	_, ok, err := GetUserLangByTelegramID(db, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, UpsertUser(db, &User{TelegramID: 10, ChatID: 10, Username: strPtr("ann")}))
	_, ok, err = GetUserLangByTelegramID(db, 10)
	require.NoError(t, err)
	assert.False(t, ok, "fresh user has no language")

	require.NoError(t, SetUserLangByTelegramID(db, 10, "ka"))
	lang, ok, err := GetUserLangByTelegramID(db, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ka", lang)

	// upsert keeps the language
	require.NoError(t, UpsertUser(db, &User{TelegramID: 10, ChatID: 10, FirstName: strPtr("Ann")}))
	lang, _, err = GetUserLangByTelegramID(db, 10)
	require.NoError(t, err)
	assert.Equal(t, "ka", lang)

	// unknown user gets created by the language write
	require.NoError(t, UserLangs{DB: db}.SetUserLang(20, "uk"))
	lang, ok, err = UserLangs{DB: db}.GetUserLang(20)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "uk", lang)

	n, err := CountUsers(db)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLeads(t *testing.T) {
	db := openTestDB(t)

	for i, contact := range []string{"+995 555 000", "+380 111 222"} {
		num, err := NextLeadNumber(db)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), num)

		_, err = AddLead(db, &Lead{
			Number:     num,
			TelegramID: 100 + int64(i),
			ChatID:     100 + int64(i),
			Username:   strPtr("user"),
			FullName:   "User",
			Contact:    contact,
			Source:     LeadSourceText,
			Lang:       "ru",
		})
		require.NoError(t, err)
	}

	all, err := ListLeads(db, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(2), all[0].Number)
	assert.Equal(t, "+380 111 222", all[0].Contact)
	require.NotNil(t, all[0].Username)
	assert.Equal(t, "user", *all[0].Username)
	assert.False(t, all[0].CreatedAt.IsZero())

	last, err := ListLeads(db, 1)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, int64(2), last[0].Number)
}

func TestLeads_DuplicateNumberRejected(t *testing.T) {
	db := openTestDB(t)

	l := &Lead{Number: 1, TelegramID: 1, ChatID: 1, Contact: "1", Source: LeadSourceContact}
	_, err := AddLead(db, l)
	require.NoError(t, err)
	_, err = AddLead(db, l)
	assert.Error(t, err)
}

func TestNextLeadNumber_Error(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Close())

	_, err := NextLeadNumber(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserve lead number")
}

func TestNextLeadNumber_Concurrent(t *testing.T) {
	db := openTestDB(t)

	const n = 20
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int64]bool{}
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := NextLeadNumber(db)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			seen[num] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
}
