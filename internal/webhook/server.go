// Package webhook serves Telegram webhook deliveries over HTTP.
package webhook

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"contactbot/internal/config"
)

const (
	SecretHeader = "X-Telegram-Bot-Api-Secret-Token"
	maxBodyBytes = 1 << 20
)

var ErrNoWebhookBase = errors.New("WEBHOOK_BASE is not set")

// Dispatcher handles a decoded update; *tg.Bot implements it.
type Dispatcher interface {
	HandleUpdate(ctx context.Context, upd tgbotapi.Update)
}

// Registrar calls raw Bot API methods; *tgbotapi.BotAPI implements it.
type Registrar interface {
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
}

type Server struct {
	router *gin.Engine
	cfg    *config.Config
	reg    Registrar
	disp   Dispatcher
	log    *zap.Logger
}

func NewServer(cfg *config.Config, reg Registrar, disp Dispatcher, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	s := &Server{router: r, cfg: cfg, reg: reg, disp: disp, log: log}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.router }

func (s *Server) registerRoutes() {
	s.router.GET("/", s.health)
	s.router.GET("/set-webhook", s.setWebhook)
	s.router.POST("/"+s.cfg.WebhookPath+"/:token", s.update)
}

// WebhookURL is empty when WEBHOOK_BASE is not configured.
func (s *Server) WebhookURL() string {
	if s.cfg.WebhookBase == "" {
		return ""
	}
	return s.cfg.WebhookBase + "/" + s.cfg.WebhookPath + "/" + s.cfg.BotToken
}

// SetWebhook points Telegram at this server and drops pending updates.
func (s *Server) SetWebhook() (string, error) {
	url := s.WebhookURL()
	if url == "" {
		return "", ErrNoWebhookBase
	}

	params := tgbotapi.Params{"url": url}
	params.AddNonEmpty("secret_token", s.cfg.WebhookSecret)
	params.AddBool("drop_pending_updates", true)

	resp, err := s.reg.MakeRequest("setWebhook", params)
	if err != nil {
		return url, fmt.Errorf("set webhook: %w", err)
	}
	if !resp.Ok {
		return url, fmt.Errorf("set webhook: %s", resp.Description)
	}
	return url, nil
}

// Redact hides the bot token inside s.
func (s *Server) Redact(v string) string {
	if s.cfg.BotToken == "" {
		return v
	}
	return strings.ReplaceAll(v, s.cfg.BotToken, "<token>")
}

func (s *Server) health(c *gin.Context) {
	c.String(http.StatusOK, "✅ Bot webhook is live")
}

func (s *Server) setWebhook(c *gin.Context) {
	url, err := s.SetWebhook()
	switch {
	case errors.Is(err, ErrNoWebhookBase):
		c.String(http.StatusBadRequest, "❌ Set WEBHOOK_BASE env first")
	case err != nil:
		s.log.Error("set webhook", zap.Error(err))
		c.String(http.StatusBadGateway, "set_webhook -> false: %s", s.Redact(err.Error()))
	default:
		c.String(http.StatusOK, "set_webhook -> true to %s", s.Redact(url))
	}
}

func (s *Server) update(c *gin.Context) {
	if !equal(c.Param("token"), s.cfg.BotToken) {
		c.String(http.StatusForbidden, "forbidden")
		return
	}
	if s.cfg.WebhookSecret != "" && !equal(c.GetHeader(SecretHeader), s.cfg.WebhookSecret) {
		c.String(http.StatusForbidden, "bad secret")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	var upd tgbotapi.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		s.log.Warn("decode update", zap.Error(err))
		c.String(http.StatusBadRequest, "bad update")
		return
	}

	s.disp.HandleUpdate(c.Request.Context(), upd)
	c.String(http.StatusOK, "ok")
}

func equal(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// requestLogger logs the route pattern, never the raw path: it carries the
// bot token.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// Run registers the webhook when WEBHOOK_BASE is set and serves until ctx
// is done.
func (s *Server) Run(ctx context.Context) error {
	if s.cfg.WebhookBase != "" {
		url, err := s.SetWebhook()
		if err != nil {
			s.log.Error("register webhook", zap.Error(err))
		} else {
			s.log.Info("webhook registered", zap.String("url", s.Redact(url)))
		}
	} else {
		s.log.Warn("WEBHOOK_BASE is not set, open /set-webhook after deploy")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server starting", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
