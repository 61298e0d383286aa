package tg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"contactbot/internal/i18n"
)

const maxStartImageBytes = 10 << 20

// sendStart greets the user with the banner: local file first, then the
// URL, then plain text.
func (b *Bot) sendStart(ctx context.Context, chatID int64, lang i18n.Lang) {
	t := i18n.T(lang)
	configured := false

	if p := b.cfg.StartImagePath; p != "" {
		if fileExists(p) {
			configured = true
			if b.sendStartPhoto(chatID, lang, tgbotapi.FilePath(p)) {
				return
			}
		} else {
			b.log.Debug("start image not found", zap.String("path", p))
		}
	}

	if u := b.cfg.StartImageURL; u != "" {
		configured = true
		data, err := b.download(ctx, u)
		if err != nil {
			b.log.Warn("download start image", zap.String("url", u), zap.Error(err))
		} else if b.sendStartPhoto(chatID, lang, tgbotapi.FileBytes{Name: "start.jpg", Bytes: data}) {
			return
		}
	}

	text := t.Welcome
	if configured {
		text += "\n\n" + t.ImgError
	}
	b.sendWithMenu(chatID, text, MainMenu(lang))
}

func (b *Bot) sendStartPhoto(chatID int64, lang i18n.Lang, file tgbotapi.RequestFileData) bool {
	photo := tgbotapi.NewPhoto(chatID, file)
	photo.Caption = i18n.T(lang).Welcome
	photo.ReplyMarkup = MainMenu(lang)
	return b.send(photo)
}

func (b *Bot) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxStartImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}
