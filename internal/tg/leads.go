package tg

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"contactbot/internal/i18n"
	"contactbot/internal/report"
	"contactbot/internal/storage"
)

// takeLead records a phone number, forwards it to the admin chat and thanks
// the user. Storage and admin failures never reach the user.
func (b *Bot) takeLead(m *tgbotapi.Message, lang i18n.Lang, contact, source string) {
	u := m.From
	lead := &storage.Lead{
		TelegramID: u.ID,
		ChatID:     m.Chat.ID,
		FullName:   FullName(u),
		Contact:    contact,
		Source:     source,
		Lang:       string(lang),
	}
	if uname := strings.TrimSpace(u.UserName); uname != "" {
		lead.Username = &uname
	}

	if num, err := storage.NextLeadNumber(b.db); err != nil {
		b.log.Error("reserve lead number", zap.Error(err))
	} else {
		lead.Number = num
		if _, err := storage.AddLead(b.db, lead); err != nil {
			b.log.Error("store lead", zap.Int64("number", num), zap.Error(err))
		}
	}
	b.log.Info("lead received",
		zap.Int64("number", lead.Number),
		zap.String("user", UserRef(u)),
		zap.String("source", source))

	b.notifyAdmin(lead)

	b.sendWithMenu(m.Chat.ID, i18n.T(lang).LeftOK, MainMenu(lang))
}

// Admin notifications use the bot's default language, not the user's.
func (b *Bot) notifyAdmin(lead *storage.Lead) {
	if b.cfg.AdminChatID == 0 {
		return
	}
	uname := "—"
	if lead.Username != nil {
		uname = html.EscapeString(*lead.Username)
	}
	text := i18n.T(b.langs.Default()).Lead(
		lead.Number,
		html.EscapeString(lead.FullName),
		lead.TelegramID,
		uname,
		html.EscapeString(lead.Contact),
	)

	msg := tgbotapi.NewMessage(b.cfg.AdminChatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send lead to admin", zap.Int64("admin_chat_id", b.cfg.AdminChatID), zap.Error(err))
	}
}

// handleAdminCommand reports whether m was an admin command.
func (b *Bot) handleAdminCommand(m *tgbotapi.Message) bool {
	if m.Command() != "leads" {
		return false
	}
	if m.From == nil || !b.cfg.IsAdmin(m.From.ID) {
		return true
	}

	limit := 0
	if arg := strings.TrimSpace(m.CommandArguments()); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			b.send(tgbotapi.NewMessage(m.Chat.ID, "Использование: /leads [количество]"))
			return true
		}
		limit = n
	}
	b.sendLeadsReport(m.Chat.ID, limit)
	return true
}

func (b *Bot) sendLeadsReport(chatID int64, limit int) {
	leads, err := storage.ListLeads(b.db, limit)
	if err != nil {
		b.log.Error("list leads", zap.Error(err))
		b.send(tgbotapi.NewMessage(chatID, "Ошибка: не удалось прочитать лиды."))
		return
	}
	if len(leads) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "Лидов пока нет."))
		return
	}

	buf, err := report.LeadsXLSX(leads)
	if err != nil {
		b.log.Error("build leads xlsx", zap.Error(err))
		b.send(tgbotapi.NewMessage(chatID, "Ошибка: не удалось сформировать файл."))
		return
	}

	users, err := storage.CountUsers(b.db)
	if err != nil {
		b.log.Warn("count users", zap.Error(err))
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("leads_%s.xlsx", time.Now().Format("2006-01-02")),
		Bytes: buf.Bytes(),
	})
	doc.Caption = fmt.Sprintf("Лидов: %d\nПользователей: %d", len(leads), users)
	b.send(doc)
}
