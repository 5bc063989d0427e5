package mocks

import (
	"context"

	"minibot/internal/domain/report"
	"minibot/internal/domain/telegram"

	"github.com/stretchr/testify/mock"
)

type TelegramClient struct {
	mock.Mock
}

func (_m *TelegramClient) FetchUpdates(ctx context.Context) (*telegram.Updates, error) {
	ret := _m.Called(ctx)
	updates, _ := ret.Get(0).(*telegram.Updates)
	return updates, ret.Error(1)
}

func (_m *TelegramClient) FetchUpdatesFrom(ctx context.Context, offset int64) (*telegram.Updates, error) {
	ret := _m.Called(ctx, offset)
	updates, _ := ret.Get(0).(*telegram.Updates)
	return updates, ret.Error(1)
}

func (_m *TelegramClient) LastSenderID(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *TelegramClient) SendMessage(ctx context.Context, text string, opts ...telegram.SendOption) error {
	ret := _m.Called(ctx, text, opts)
	return ret.Error(0)
}

func (_m *TelegramClient) SendMapping(ctx context.Context, fields report.Fields, opts ...telegram.SendOption) error {
	ret := _m.Called(ctx, fields, opts)
	return ret.Error(0)
}

// SendOptionsMatch matches a variadic SendOption argument by its folded value.
func SendOptionsMatch(want telegram.SendOptions) interface{} {
	return mock.MatchedBy(func(opts []telegram.SendOption) bool {
		return telegram.ApplySendOptions(opts...) == want
	})
}
