package telegram

import (
	"errors"
	"fmt"

	"gopkg.in/telebot.v3"
)

// ErrEmptyResult is returned when an update batch holds no messages at all.
var ErrEmptyResult = errors.New("your bot has not received any messages yet")

// Updates is the decoded body of a getUpdates call.
// Result keeps the order the Bot API delivered it in.
type Updates struct {
	APIResponse
	Result []telebot.Update `json:"result"`
}

// LastSenderAndText returns the text and chat id of the last entry in u.
// Position decides what "last" means; dates are never compared.
func LastSenderAndText(u *Updates) (string, int64, error) {
	if u == nil || len(u.Result) == 0 {
		return "", 0, ErrEmptyResult
	}

	last := u.Result[len(u.Result)-1]
	if last.Message == nil || last.Message.Chat == nil {
		return "", 0, fmt.Errorf("update %d carries no message: %w", last.ID, ErrEmptyResult)
	}
	return last.Message.Text, last.Message.Chat.ID, nil
}

// NextOffset is the offset that acknowledges every update in u.
// It returns 0 when u carries nothing to acknowledge.
func NextOffset(u *Updates) int64 {
	var next int64
	if u == nil {
		return next
	}
	for _, upd := range u.Result {
		if id := int64(upd.ID) + 1; id > next {
			next = id
		}
	}
	return next
}
