package tg

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"contactbot/internal/storage"
)

// UserRef: "@username" или "id:123"
func UserRef(u *tgbotapi.User) string {
	if u == nil {
		return "id:unknown"
	}
	if strings.TrimSpace(u.UserName) != "" {
		return "@" + strings.TrimSpace(u.UserName)
	}
	return fmt.Sprintf("id:%d", u.ID)
}

func FullName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return UserRef(u)
	}
	return name
}

var phoneRe = regexp.MustCompile(`^\+?[\d\s\-()]{7,}$`)

// IsPhone accepts "+995 555 12-34-56" style input with at least 7 digits.
func IsPhone(text string) bool {
	text = strings.TrimSpace(text)
	return phoneRe.MatchString(text) && countDigits(text) >= 7
}

// looksLikePhone is true for input made only of phone characters, such as
// a truncated number.
func looksLikePhone(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || countDigits(text) == 0 {
		return false
	}
	for _, r := range text {
		if !unicode.IsDigit(r) && !strings.ContainsRune("+-() ", r) {
			return false
		}
	}
	return true
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func mkUser(m *tgbotapi.Message) *storage.User {
	u := &storage.User{
		TelegramID: m.From.ID,
		ChatID:     m.Chat.ID,
	}
	username := strings.TrimSpace(m.From.UserName)
	first := strings.TrimSpace(m.From.FirstName)
	last := strings.TrimSpace(m.From.LastName)
	if username != "" {
		u.Username = &username
	}
	if first != "" {
		u.FirstName = &first
	}
	if last != "" {
		u.LastName = &last
	}
	return u
}
