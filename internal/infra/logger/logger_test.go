package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"minibot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		in     string
		want   logrus.Level
		wantOK bool
	}{
		{"debug", logrus.DebugLevel, true},
		{" WARN ", logrus.WarnLevel, true},
		{"", logrus.InfoLevel, false},
		{"loud", logrus.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := levelFor(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestFormatterFor(t *testing.T) {
	assert.IsType(t, &logrus.JSONFormatter{}, formatterFor("production"))
	assert.IsType(t, &logrus.JSONFormatter{}, formatterFor("Staging"))
	assert.IsType(t, &logrus.TextFormatter{}, formatterFor("development"))
	assert.IsType(t, &logrus.TextFormatter{}, formatterFor(""))
}

func TestInitFallsBackToInfo(t *testing.T) {
	Init(&config.AppConfig{LogLevel: "loud", Environment: "development"})
	assert.Equal(t, logrus.InfoLevel, Get().GetLevel())

	Init(&config.AppConfig{LogLevel: "debug", Environment: "production"})
	assert.Equal(t, logrus.DebugLevel, Get().GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Get().Formatter)
}

func TestComponentTagsEntries(t *testing.T) {
	Init(&config.AppConfig{LogLevel: "info", Environment: "production"})
	var buf bytes.Buffer
	Log.SetOutput(&buf)

	Component("scheduler").Info("Report job finished")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "scheduler", line["component"])
	assert.Equal(t, "Report job finished", line["msg"])
}
