package minibot_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"minibot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsCollectorSendsTable(t *testing.T) {
	var sent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sent = r.URL.Query().Get("text")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": map[string]any{}})
	}))
	defer server.Close()

	collect := minibot.FieldsCollector("Nightly backup", func(context.Context) (minibot.Fields, error) {
		return minibot.Fields{{Key: "files", Value: 1204}, {Key: "status", Value: "ok"}}, nil
	})
	bot := minibot.NewWithToken("1:x", "7", minibot.WithBaseURL(server.URL))

	ctx := context.Background()
	text, err := collect(ctx)
	require.NoError(t, err)
	require.NoError(t, bot.SendMessage(ctx, text))

	assert.Equal(t, "Nightly backup\n<code>files    1204</code>\n<code>status   ok</code>", sent)
}

func TestFieldsCollectorPassesErrorsThrough(t *testing.T) {
	boom := errors.New("disk unreadable")
	collect := minibot.FieldsCollector("", func(context.Context) (minibot.Fields, error) {
		return nil, boom
	})

	_, err := collect(context.Background())
	assert.ErrorIs(t, err, boom)
}
