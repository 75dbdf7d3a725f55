package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/euroquote/pkg/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestNewWithWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{Env: "staging", LogLevel: "debug"}, &buf)

	log.WithFields(map[string]interface{}{"isin": "NL0012969182", "market": "XAMS"}).
		WithError(errors.New("boom")).
		Info("quote fetched")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "quote fetched", entry["message"])
	assert.Equal(t, "euroquote", entry["service"])
	assert.Equal(t, "staging", entry["env"])
	assert.Equal(t, "NL0012969182", entry["isin"])
	assert.Equal(t, "XAMS", entry["market"])
	assert.Equal(t, "boom", entry["error"])
	assert.Contains(t, entry, "time")
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{Env: "production", LogLevel: "warn"}, &buf)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")
	log.WithField("k", 1).Error("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestNew_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "euroquote.log")
	log := New(&config.Config{Env: "development", LogLevel: "info", LogFormat: "json", LogFile: path})
	require.NotNil(t, log)

	log.Info("written to file")
	assert.FileExists(t, path)
}

func TestNop(t *testing.T) {
	log := Nop()
	log.WithField("a", "b").Error("discarded")
}

func TestNewTo_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewTo(&config.Config{Env: "development", LogLevel: "info", LogFormat: "console"}, &buf)

	log.Info("human readable")

	assert.Contains(t, buf.String(), "human readable")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
