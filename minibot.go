// Package minibot sends notifications through a Telegram bot from inside
// another Go program.
//
//	bot, err := minibot.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = bot.SendMessage(ctx, "All work done.")
//
// Programs that report a key-value table in standard mode pass a
// FieldsCollector to Main:
//
//	minibot.Main(minibot.FieldsCollector("Nightly backup", func(ctx context.Context) (minibot.Fields, error) {
//		return minibot.Fields{{Key: "files", Value: 1204}, {Key: "status", Value: "ok"}}, nil
//	}))
package minibot

import (
	"context"
	"os"

	"minibot/internal/app"
	"minibot/internal/cli"
	"minibot/internal/domain/report"
	"minibot/internal/domain/telegram"
	"minibot/internal/infra/config"
	infraTelegram "minibot/internal/infra/telegram"
)

type (
	Bot         = infraTelegram.Client
	Option      = infraTelegram.Option
	SendOption  = telegram.SendOption
	Updates     = telegram.Updates
	RemoteError = telegram.RemoteError
	Field       = report.Field
	Fields      = report.Fields
	Collector   = report.Collector
)

var (
	ErrEmptyResult         = telegram.ErrEmptyResult
	ErrEmptyMapping        = report.ErrEmptyMapping
	ErrLikelyMisconfigured = telegram.ErrLikelyMisconfigured

	WithRecipient  = telegram.WithRecipient
	WithHeader     = telegram.WithHeader
	WithBaseURL    = infraTelegram.WithBaseURL
	WithHTTPClient = infraTelegram.WithHTTPClient
	WithLogger     = infraTelegram.WithLogger
	WithDebug      = infraTelegram.WithDebug

	LastSenderAndText = telegram.LastSenderAndText
	NextOffset        = telegram.NextOffset

	FieldsCollector = app.FieldsCollector
)

// New builds a bot from TOKEN and USER_ID in the environment or a .env file.
func New(opts ...Option) (*Bot, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return infraTelegram.NewClientFromConfig(cfg, opts...), nil
}

// NewWithToken builds a bot from explicit values.
func NewWithToken(token, userID string, opts ...Option) *Bot {
	return infraTelegram.NewClient(token, userID, opts...)
}

// Main runs the minibot command line with os.Args and exits. collect supplies
// the text sent in standard mode.
func Main(collect Collector) {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], cli.Deps{
		Stdout:    os.Stdout,
		Collector: collect,
	}))
}
