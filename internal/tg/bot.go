package tg

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"contactbot/internal/config"
	"contactbot/internal/i18n"
)

// Sender is the part of *tgbotapi.BotAPI the handlers use.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api   Sender
	db    *sql.DB
	cfg   *config.Config
	langs *i18n.Store
	log   *zap.Logger
	http  *http.Client
}

func New(api Sender, db *sql.DB, cfg *config.Config, langs *i18n.Store, log *zap.Logger) *Bot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bot{
		api:   api,
		db:    db,
		cfg:   cfg,
		langs: langs,
		log:   log,
		http:  &http.Client{Timeout: 20 * time.Second},
	}
}

// Run handles updates one by one until ctx is done or the channel closes.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, upd)
		}
	}
}

// HandleUpdate routes a single update. It is safe for concurrent use, the
// webhook server calls it from request goroutines.
func (b *Bot) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		b.handleCallback(upd.CallbackQuery)
		return
	}
	if upd.Message == nil || upd.Message.Chat == nil {
		return
	}
	m := upd.Message

	// /chatid for any chat, handy to find ADMIN_CHAT_ID
	if m.IsCommand() && m.Command() == "chatid" {
		b.send(tgbotapi.NewMessage(m.Chat.ID, fmt.Sprintf("chat_id = %d", m.Chat.ID)))
		return
	}

	if b.cfg.AdminChatID != 0 && m.Chat.ID == b.cfg.AdminChatID && m.IsCommand() {
		if b.handleAdminCommand(m) {
			return
		}
	}

	if m.Chat.IsPrivate() {
		b.handleUserMessage(ctx, m)
	}
}

func (b *Bot) send(c tgbotapi.Chattable) bool {
	if _, err := b.api.Send(c); err != nil {
		b.log.Warn("telegram send failed", zap.Error(err))
		return false
	}
	return true
}
