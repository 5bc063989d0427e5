package app

import (
	"context"
	"fmt"

	"minibot/internal/domain/report"
	domainTelegram "minibot/internal/domain/telegram"
)

// OperatorService answers the introspection questions an operator asks while
// setting a bot up.
type OperatorService struct {
	telegramClient domainTelegram.Client
	token          string
	userID         string
}

func NewOperatorService(tc domainTelegram.Client, token, userID string) *OperatorService {
	return &OperatorService{
		telegramClient: tc,
		token:          token,
		userID:         userID,
	}
}

// LastSenderID returns the chat id of the most recent message the bot received.
func (s *OperatorService) LastSenderID(ctx context.Context) (int64, error) {
	id, err := s.telegramClient.LastSenderID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get last sender: %w", err)
	}
	return id, nil
}

// LoadedConfig lists the values read from the environment, in display order.
func (s *OperatorService) LoadedConfig() report.Fields {
	return report.Fields{
		{Key: "Token", Value: s.token},
		{Key: "USER_ID", Value: s.userID},
	}
}

// AcknowledgeUpdates confirms every pending update on the server, so later
// polls only see messages that arrive afterwards. It returns how many were
// confirmed.
func (s *OperatorService) AcknowledgeUpdates(ctx context.Context) (int, error) {
	updates, err := s.telegramClient.FetchUpdates(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch pending updates: %w", err)
	}

	offset := domainTelegram.NextOffset(updates)
	if offset == 0 {
		return 0, nil
	}
	if _, err := s.telegramClient.FetchUpdatesFrom(ctx, offset); err != nil {
		return 0, fmt.Errorf("failed to confirm updates up to %d: %w", offset-1, err)
	}
	return len(updates.Result), nil
}
