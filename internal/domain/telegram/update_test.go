package telegram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

func message(updateID int, text string, chatID int64) telebot.Update {
	return telebot.Update{
		ID:      updateID,
		Message: &telebot.Message{Text: text, Chat: &telebot.Chat{ID: chatID}},
	}
}

func TestLastSenderAndText(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		_, _, err := LastSenderAndText(&Updates{APIResponse: APIResponse{OK: true}})
		assert.ErrorIs(t, err, ErrEmptyResult)

		_, _, err = LastSenderAndText(nil)
		assert.ErrorIs(t, err, ErrEmptyResult)
	})

	t.Run("last entry wins", func(t *testing.T) {
		u := &Updates{Result: []telebot.Update{
			message(10, "a", 1),
			message(11, "b", 2),
		}}

		text, chatID, err := LastSenderAndText(u)
		require.NoError(t, err)
		assert.Equal(t, "b", text)
		assert.Equal(t, int64(2), chatID)
	})

	t.Run("position beats update id", func(t *testing.T) {
		u := &Updates{Result: []telebot.Update{
			message(50, "newer id", 5),
			message(40, "last position", 4),
		}}

		text, chatID, err := LastSenderAndText(u)
		require.NoError(t, err)
		assert.Equal(t, "last position", text)
		assert.Equal(t, int64(4), chatID)
	})

	t.Run("last entry without a message", func(t *testing.T) {
		u := &Updates{Result: []telebot.Update{
			message(1, "a", 1),
			{ID: 2, Callback: &telebot.Callback{ID: "cb"}},
		}}

		_, _, err := LastSenderAndText(u)
		assert.ErrorIs(t, err, ErrEmptyResult)
		assert.Contains(t, err.Error(), "update 2")
	})
}

func TestNextOffset(t *testing.T) {
	assert.Equal(t, int64(0), NextOffset(nil))
	assert.Equal(t, int64(0), NextOffset(&Updates{}))

	u := &Updates{Result: []telebot.Update{message(7, "a", 1), message(9, "b", 1), message(8, "c", 1)}}
	assert.Equal(t, int64(10), NextOffset(u))
}

func TestAPIResponseCheck(t *testing.T) {
	assert.NoError(t, APIResponse{OK: true}.Check())

	err := APIResponse{ErrorCode: 404, Description: "Not Found"}.Check()
	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.True(t, remoteErr.IsNotFound())
	assert.ErrorIs(t, err, ErrLikelyMisconfigured)
	assert.Equal(t, "error returned in http response: 404 - Not Found. did you set up the .env file correctly?", err.Error())

	err = APIResponse{ErrorCode: 401, Description: "Unauthorized"}.Check()
	require.True(t, errors.As(err, &remoteErr))
	assert.False(t, remoteErr.IsNotFound())
	assert.NotErrorIs(t, err, ErrLikelyMisconfigured)
}

func TestApplySendOptions(t *testing.T) {
	assert.Equal(t, SendOptions{}, ApplySendOptions())
	assert.Equal(t,
		SendOptions{RecipientID: "42", Header: "Daily", HasHeader: true},
		ApplySendOptions(WithRecipient("42"), WithHeader("Daily")))
}
