package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var ErrNoToken = errors.New("BOT_TOKEN is not set")

type Config struct {
	BotToken   string
	ChannelURL string
	Debug      bool
	LogLevel   string

	// leads
	AdminChatID int64
	AdminIDs    map[int64]bool

	// contacts
	DataFile       string
	DefaultLang    string
	AutoLinkPhones bool
	EmptyValue     string // "dash" | "blank"

	DBPath string

	StartImagePath string
	StartImageURL  string

	// webhook mode
	WebhookBase   string
	WebhookPath   string
	WebhookSecret string
	Port          int
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("channel_url", "https://t.me/your_channel")
	v.SetDefault("log_level", "info")
	v.SetDefault("data_file", "data.json")
	v.SetDefault("default_lang", "ru")
	v.SetDefault("empty_value", "dash")
	v.SetDefault("db_path", "bot.db")
	v.SetDefault("start_image_path", "assets/start.png")
	v.SetDefault("webhook_path", "webhook")
	v.SetDefault("port", 10000)
}

// Load reads the configuration from v. Keys are the lower-cased env names
// (BOT_TOKEN -> bot_token), so AutomaticEnv and config files both work.
func Load(v *viper.Viper) (*Config, error) {
	cfg, err := LoadLocal(v)
	if err != nil {
		return nil, err
	}
	if cfg.BotToken == "" {
		return nil, ErrNoToken
	}
	return cfg, nil
}

// LoadLocal is Load without the BOT_TOKEN requirement, for commands that
// never talk to Telegram.
func LoadLocal(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	adminChatID, err := parseInt64(v.GetString("admin_chat_id"))
	if err != nil {
		return nil, fmt.Errorf("bad ADMIN_CHAT_ID: %w", err)
	}
	port, err := strconv.Atoi(strings.TrimSpace(v.GetString("port")))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("bad PORT %q", v.GetString("port"))
	}

	cfg := &Config{
		BotToken:   strings.TrimSpace(v.GetString("bot_token")),
		ChannelURL: strings.TrimSpace(v.GetString("channel_url")),
		Debug:      v.GetBool("bot_debug"),
		LogLevel:   strings.TrimSpace(v.GetString("log_level")),

		AdminChatID: adminChatID,
		AdminIDs:    parseIDs(v.GetString("admin_ids")),

		DataFile:       strings.TrimSpace(v.GetString("data_file")),
		DefaultLang:    strings.ToLower(strings.TrimSpace(v.GetString("default_lang"))),
		AutoLinkPhones: v.GetBool("autolink_phones"),
		EmptyValue:     strings.ToLower(strings.TrimSpace(v.GetString("empty_value"))),

		DBPath: strings.TrimSpace(v.GetString("db_path")),

		StartImagePath: strings.TrimSpace(v.GetString("start_image_path")),
		StartImageURL:  strings.TrimSpace(v.GetString("start_image_url")),

		WebhookBase:   strings.TrimRight(strings.TrimSpace(v.GetString("webhook_base")), "/"),
		WebhookPath:   strings.Trim(strings.TrimSpace(v.GetString("webhook_path")), "/"),
		WebhookSecret: strings.TrimSpace(v.GetString("webhook_secret")),
		Port:          port,
	}

	switch cfg.EmptyValue {
	case "dash", "blank":
	default:
		return nil, fmt.Errorf("bad EMPTY_VALUE %q (want dash or blank)", cfg.EmptyValue)
	}
	if cfg.WebhookPath == "" {
		cfg.WebhookPath = "webhook"
	}
	return cfg, nil
}

// IsAdmin reports whether id may use admin commands. An empty ADMIN_IDS
// lets everybody in the admin chat use them.
func (c *Config) IsAdmin(id int64) bool {
	if len(c.AdminIDs) == 0 {
		return true
	}
	return c.AdminIDs[id]
}

func parseInt64(v string) (int64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

func parseIDs(s string) map[int64]bool {
	out := map[int64]bool{}
	s = strings.TrimSpace(s)
	if s == "" {
		return out
	}
	parts := strings.Split(s, ",")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			continue
		}
		out[id] = true
	}
	return out
}
