package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"contactbot/internal/config"
	"contactbot/internal/contacts"
	"contactbot/internal/i18n"
	"contactbot/internal/tg"
)

func newRenderCmd() *cobra.Command {
	var (
		lang  string
		plain bool
	)
	cmd := &cobra.Command{
		Use:   "render [data-file]",
		Short: "Print the contacts message the bot would send",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadLocal(viper.GetViper())
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			path := cfg.DataFile
			if len(args) == 1 {
				path = args[0]
			}

			l := i18n.Default
			if lang != "" {
				var ok bool
				if l, ok = i18n.ParseLang(lang); !ok {
					return fmt.Errorf("unknown language %q", lang)
				}
			} else if d, ok := i18n.ParseLang(cfg.DefaultLang); ok {
				l = d
			}

			rec, err := contacts.Load(path)
			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			text := contacts.Render(rec, tg.ContactOptions(cfg, l))
			if plain {
				text = contacts.PlainText(text)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "Language: ru, ka or uk (default DEFAULT_LANG).")
	cmd.Flags().BoolVar(&plain, "plain", false, "Strip HTML markup.")
	return cmd
}
