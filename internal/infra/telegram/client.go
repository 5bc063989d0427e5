// internal/infra/telegram/client.go
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"minibot/internal/domain/report"
	domainTelegram "minibot/internal/domain/telegram"
	"minibot/internal/infra/config"
	"minibot/internal/infra/logger"

	"github.com/sirupsen/logrus"
)

const (
	methodGetUpdates  = "getUpdates"
	methodSendMessage = "sendMessage"

	// parseModeHTML is sent with every message so <code> and friends render.
	parseModeHTML = "html"
)

var _ domainTelegram.Client = (*Client)(nil)

// Client talks to the Telegram Bot API with plain GET requests.
// It holds read-only configuration and is not synchronized.
type Client struct {
	httpClient *http.Client
	baseURL    string // <api>/bot<token>/
	token      string
	userID     string
	debug      bool
	log        logrus.FieldLogger
}

type Option func(*Client)

// WithBaseURL points the client at another Bot API server.
func WithBaseURL(apiBaseURL string) Option {
	return func(c *Client) {
		if apiBaseURL == "" {
			apiBaseURL = config.DefaultAPIBaseURL
		}
		c.baseURL = strings.TrimRight(apiBaseURL, "/") + "/bot" + c.token + "/"
	}
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets where request tracing goes.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithDebug enables request tracing at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// NewClient creates a client for the bot identified by token. userID is the
// recipient used when a send call names none.
func NewClient(token, userID string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    config.DefaultAPIBaseURL + "/bot" + token + "/",
		token:      token,
		userID:     userID,
		log:        logger.Get(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig wires a client from the loaded application config.
func NewClientFromConfig(cfg *config.AppConfig, opts ...Option) *Client {
	base := []Option{
		WithBaseURL(cfg.APIBaseURL),
		WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	}
	return NewClient(cfg.Token, cfg.UserID, append(base, opts...)...)
}

// FetchUpdates polls getUpdates without acknowledging anything, so the API
// returns every pending update.
func (c *Client) FetchUpdates(ctx context.Context) (*domainTelegram.Updates, error) {
	return c.fetchUpdates(ctx, c.baseURL+methodGetUpdates)
}

// FetchUpdatesFrom polls getUpdates with an offset. Updates with a lower id
// are confirmed on the server and never returned again.
func (c *Client) FetchUpdatesFrom(ctx context.Context, offset int64) (*domainTelegram.Updates, error) {
	if offset <= 0 {
		return c.FetchUpdates(ctx)
	}
	return c.fetchUpdates(ctx, c.baseURL+methodGetUpdates+"?offset="+strconv.FormatInt(offset, 10))
}

func (c *Client) fetchUpdates(ctx context.Context, rawURL string) (*domainTelegram.Updates, error) {
	var updates domainTelegram.Updates
	if err := c.getJSON(ctx, rawURL, &updates); err != nil {
		return nil, err
	}
	if err := updates.Check(); err != nil {
		return nil, err
	}
	return &updates, nil
}

// LastSenderID fetches updates and returns the chat id of the most recent one.
func (c *Client) LastSenderID(ctx context.Context) (int64, error) {
	updates, err := c.FetchUpdates(ctx)
	if err != nil {
		return 0, err
	}
	_, chatID, err := domainTelegram.LastSenderAndText(updates)
	return chatID, err
}

// SendMessage sends text as HTML. Without WithRecipient it goes to the
// configured USER_ID.
func (c *Client) SendMessage(ctx context.Context, text string, opts ...domainTelegram.SendOption) error {
	o := domainTelegram.ApplySendOptions(opts...)
	chatID := o.RecipientID
	if chatID == "" {
		chatID = c.userID
	}

	encoded := EncodeText(text)
	rawURL := fmt.Sprintf("%s%s?text=%s&chat_id=%s&parse_mode=%s",
		c.baseURL, methodSendMessage, encoded, url.QueryEscape(chatID), parseModeHTML)
	if c.debug {
		c.log.Debugf("Sending message to ID %s: %s", chatID, encoded)
	}

	var resp domainTelegram.APIResponse
	if err := c.getJSON(ctx, rawURL, &resp); err != nil {
		return err
	}
	return resp.Check()
}

// SendMapping renders fields as an aligned table and sends it. WithHeader
// adds a first line above the table; WithHeader("") leaves that line empty.
func (c *Client) SendMapping(ctx context.Context, fields report.Fields, opts ...domainTelegram.SendOption) error {
	body, err := fields.Render()
	if err != nil {
		return err
	}

	if o := domainTelegram.ApplySendOptions(opts...); o.HasHeader {
		body = o.Header + "\n" + body
	}
	return c.SendMessage(ctx, body, opts...)
}

// getJSON sends a GET to rawURL and decodes the body into out whatever the
// HTTP status, since the Bot API reports failures inside the JSON envelope.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	if c.debug {
		c.log.Debugf("Sending GET to URL: %s", c.redact(rawURL))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to telegram: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.log.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(body),
		}).Error("failed to unmarshal telegram response")
		return fmt.Errorf("failed to unmarshal response (status %d): %w", resp.StatusCode, err)
	}

	if c.debug {
		c.log.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"duration":    time.Since(start).Round(time.Millisecond),
		}).Debug("Received response")
	}
	return nil
}

func (c *Client) redact(s string) string {
	if c.token == "" {
		return s
	}
	return strings.ReplaceAll(s, c.token, "<token>")
}

// EncodeText percent-encodes text for the query string. Spaces become %20
// and only RFC 3986 unreserved characters stay as they are.
func EncodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
