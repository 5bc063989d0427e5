package telegram

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrLikelyMisconfigured marks a remote 404, which the Bot API returns for an unknown token.
var ErrLikelyMisconfigured = errors.New("did you set up the .env file correctly?")

// APIResponse is the envelope shared by every Bot API reply.
type APIResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// RemoteError is returned when the Bot API answers with ok=false.
type RemoteError struct {
	Code        int
	Description string
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("error returned in http response: %d - %s", e.Code, e.Description)
	if e.IsNotFound() {
		msg += ". " + ErrLikelyMisconfigured.Error()
	}
	return msg
}

// IsNotFound reports whether the API answered with the 404 class.
func (e *RemoteError) IsNotFound() bool {
	return e.Code == http.StatusNotFound
}

func (e *RemoteError) Unwrap() error {
	if e.IsNotFound() {
		return ErrLikelyMisconfigured
	}
	return nil
}

// Check turns a decoded envelope into an error when ok is false.
func (r APIResponse) Check() error {
	if r.OK {
		return nil
	}
	return &RemoteError{Code: r.ErrorCode, Description: r.Description}
}
