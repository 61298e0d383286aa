package tg

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"contactbot/internal/i18n"
)

const langCallbackPrefix = "lang:"

func MainMenu(lang i18n.Lang) tgbotapi.ReplyKeyboardMarkup {
	t := i18n.T(lang)
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(t.ContactsBtn),
			tgbotapi.NewKeyboardButton(t.BackBtn),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(t.LeaveBtn),
			tgbotapi.NewKeyboardButton(t.ChangeLang),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func SharePhoneKeyboard(lang i18n.Lang) tgbotapi.ReplyKeyboardMarkup {
	t := i18n.T(lang)
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact(t.SharePhone)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(t.Back)),
	)
	kb.ResizeKeyboard = true
	return kb
}

func ChannelKeyboard(lang i18n.Lang, channelURL string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(i18n.T(lang).ChannelButton, channelURL),
		),
	)
}

func LangPicker() tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(l.Title(), langCallbackPrefix+string(l)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}
