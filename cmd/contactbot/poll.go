package main

import (
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "poll",
		Short: "Receive updates by long polling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newApp()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// A webhook left over from webhook mode blocks getUpdates.
			if _, err := rt.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
				rt.log.Warn("delete webhook", zap.Error(err))
			}

			u := tgbotapi.NewUpdate(0)
			u.Timeout = 60
			updates := rt.api.GetUpdatesChan(u)
			go func() {
				<-ctx.Done()
				rt.api.StopReceivingUpdates()
			}()

			rt.log.Info("polling started")
			rt.bot.Run(ctx, updates)
			rt.log.Info("polling stopped")
			return nil
		},
	}
}
