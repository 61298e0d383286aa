package main

import (
	"database/sql"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"contactbot/internal/config"
	"contactbot/internal/i18n"
	"contactbot/internal/storage"
	"contactbot/internal/tg"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Debug {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	if cfg.LogLevel != "" {
		lvl, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("bad LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		zc.Level = lvl
	}
	return zc.Build()
}

// app is everything both update sources share.
type app struct {
	cfg *config.Config
	log *zap.Logger
	db  *sql.DB
	api *tgbotapi.BotAPI
	bot *tg.Bot
}

func newApp() (*app, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		_ = db.Close()
		_ = log.Sync()
		return nil, fmt.Errorf("create bot: %w", err)
	}
	api.Debug = cfg.Debug
	log.Info("authorized", zap.String("username", api.Self.UserName))

	def, ok := i18n.ParseLang(cfg.DefaultLang)
	if !ok {
		log.Warn("unknown DEFAULT_LANG, using ru", zap.String("lang", cfg.DefaultLang))
		def = i18n.Default
	}
	langs := i18n.NewStore(def, storage.UserLangs{DB: db}, log)

	return &app{
		cfg: cfg,
		log: log,
		db:  db,
		api: api,
		bot: tg.New(api, db, cfg, langs, log),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("close db", zap.Error(err))
	}
	_ = a.log.Sync()
}
