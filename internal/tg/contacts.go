package tg

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"contactbot/internal/config"
	"contactbot/internal/contacts"
	"contactbot/internal/i18n"
)

// ContactOptions builds the renderer options for lang from cfg.
func ContactOptions(cfg *config.Config, lang i18n.Lang) contacts.Options {
	t := i18n.T(lang)
	opts := contacts.Options{
		DefaultTitle:   t.ContactsTitle,
		NoContacts:     t.NoContacts,
		AutoLinkPhones: cfg.AutoLinkPhones,
		LegacyLabels: contacts.LegacyLabels{
			Phone:   t.PhoneLabel,
			Email:   t.EmailLabel,
			Address: t.AddressLabel,
		},
	}
	if cfg.EmptyValue == "blank" {
		opts.Empty = contacts.EmptyBlank
	}
	return opts
}

// sendContacts reads the data file on every call so edits apply without a
// restart.
func (b *Bot) sendContacts(chatID int64, lang i18n.Lang) {
	rec, err := contacts.Load(b.cfg.DataFile)
	if err != nil {
		b.log.Warn("contacts file unusable, rendering empty record",
			zap.String("path", b.cfg.DataFile), zap.Error(err))
	}
	text := contacts.Render(rec, ContactOptions(b.cfg, lang))

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	msg.ReplyMarkup = MainMenu(lang)

	_, err = b.api.Send(msg)
	if err == nil {
		return
	}
	if !isEntityParseError(err) {
		b.log.Warn("send contacts", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}

	b.log.Warn("contacts markup rejected, resending as plain text", zap.Error(err))
	msg.Text = contacts.PlainText(text)
	msg.ParseMode = ""
	b.send(msg)
}

func isEntityParseError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "can't parse entities")
}
