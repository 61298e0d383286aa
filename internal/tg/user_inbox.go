package tg

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"contactbot/internal/i18n"
	"contactbot/internal/storage"
)

func (b *Bot) handleUserMessage(ctx context.Context, m *tgbotapi.Message) {
	if m.From == nil {
		return
	}

	if err := storage.UpsertUser(b.db, mkUser(m)); err != nil {
		b.log.Warn("upsert user", zap.String("user", UserRef(m.From)), zap.Error(err))
	}

	lang := b.langs.Get(m.From.ID)
	t := i18n.T(lang)
	chatID := m.Chat.ID

	if m.Contact != nil {
		b.takeLead(m, lang, strings.TrimSpace(m.Contact.PhoneNumber), storage.LeadSourceContact)
		return
	}

	if m.IsCommand() {
		switch m.Command() {
		case "start":
			b.sendStart(ctx, chatID, lang)
		case "contacts":
			b.sendContacts(chatID, lang)
		case "lang":
			b.sendLangPicker(chatID, lang)
		default:
			b.sendWithMenu(chatID, t.Fallback, MainMenu(lang))
		}
		return
	}

	switch i18n.MatchButton(m.Text) {
	case i18n.ButtonContacts:
		b.sendContacts(chatID, lang)
	case i18n.ButtonBackToChannel:
		b.sendChannelLink(chatID, lang)
	case i18n.ButtonLeaveContacts:
		b.sendWithMenu(chatID, t.LeavePrompt, SharePhoneKeyboard(lang))
	case i18n.ButtonChangeLang:
		b.sendLangPicker(chatID, lang)
	case i18n.ButtonBack:
		b.sendWithMenu(chatID, t.MenuHint, MainMenu(lang))
	default:
		text := strings.TrimSpace(m.Text)
		switch {
		case IsPhone(text):
			b.takeLead(m, lang, text, storage.LeadSourceText)
		case looksLikePhone(text):
			b.sendWithMenu(chatID, t.NumberInvalid, SharePhoneKeyboard(lang))
		default:
			b.sendWithMenu(chatID, t.Fallback, MainMenu(lang))
		}
	}
}

func (b *Bot) sendWithMenu(chatID int64, text string, markup any) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	b.send(msg)
}

func (b *Bot) sendChannelLink(chatID int64, lang i18n.Lang) {
	msg := tgbotapi.NewMessage(chatID, i18n.T(lang).ToChannel)
	if b.cfg.ChannelURL != "" {
		msg.ReplyMarkup = ChannelKeyboard(lang, b.cfg.ChannelURL)
	} else {
		msg.ReplyMarkup = MainMenu(lang)
	}
	b.send(msg)
}

func (b *Bot) sendLangPicker(chatID int64, lang i18n.Lang) {
	msg := tgbotapi.NewMessage(chatID, i18n.T(lang).LangPick)
	msg.ReplyMarkup = LangPicker()
	b.send(msg)
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq == nil || cq.From == nil {
		return
	}

	code, ok := strings.CutPrefix(cq.Data, langCallbackPrefix)
	lang, known := i18n.ParseLang(code)
	if !ok || !known {
		_, _ = b.api.Request(tgbotapi.NewCallback(cq.ID, ""))
		return
	}

	// failure is logged by the store, memory is updated anyway
	_ = b.langs.Set(cq.From.ID, lang)

	chatID := cq.From.ID
	if cq.Message != nil && cq.Message.Chat != nil {
		chatID = cq.Message.Chat.ID
	}
	b.sendWithMenu(chatID, i18n.T(lang).MenuHint, MainMenu(lang))

	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "OK")); err != nil {
		b.log.Debug("answer callback", zap.Error(err))
	}
}
