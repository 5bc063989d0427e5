package telegram

import (
	"context"

	"minibot/internal/domain/report"
)

// Client defines the operations the application needs from a Telegram bot.
// This keeps the app layer independent of how requests reach the Bot API.
type Client interface {
	FetchUpdates(ctx context.Context) (*Updates, error)
	FetchUpdatesFrom(ctx context.Context, offset int64) (*Updates, error)
	LastSenderID(ctx context.Context) (int64, error)
	SendMessage(ctx context.Context, text string, opts ...SendOption) error
	SendMapping(ctx context.Context, fields report.Fields, opts ...SendOption) error
}

// SendOptions holds the optional parts of an outgoing message.
type SendOptions struct {
	RecipientID string // Empty means the configured USER_ID
	Header      string // Only used by SendMapping
	HasHeader   bool   // Set by WithHeader, even for an empty header
}

type SendOption func(*SendOptions)

// WithRecipient overrides the configured default recipient.
func WithRecipient(id string) SendOption {
	return func(o *SendOptions) {
		o.RecipientID = id
	}
}

// WithHeader puts a line of text above a rendered mapping. An empty header
// still adds the line break.
func WithHeader(header string) SendOption {
	return func(o *SendOptions) {
		o.Header = header
		o.HasHeader = true
	}
}

// ApplySendOptions folds opts into a SendOptions value.
func ApplySendOptions(opts ...SendOption) SendOptions {
	var o SendOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
