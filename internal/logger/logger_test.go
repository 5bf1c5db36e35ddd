package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := New(Config{Level: DebugLevel, Output: path})
	req.NoError(err)

	l.Debug().Str("component", "test").Msg("hello")

	data, err := os.ReadFile(path)
	req.NoError(err)

	var entry map[string]interface{}
	req.NoError(json.Unmarshal(data, &entry))
	req.Equal("hello", entry["message"])
	req.Equal("debug", entry["level"])
	req.Equal("test", entry["component"])
	req.Contains(entry, "time")
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	req := require.New(t)

	l, err := New(Config{Level: "chatty", Output: "stderr"})
	req.NoError(err)
	req.Equal(zerolog.InfoLevel, l.GetLevel())

	l, err = New(Config{Level: Disabled, Output: "stderr"})
	req.NoError(err)
	req.Equal(zerolog.Disabled, l.GetLevel())
}

func TestNewFailsOnUnwritableOutput(t *testing.T) {
	dir := t.TempDir()

	_, err := New(Config{Output: dir})
	require.Error(t, err)
}

func TestInitReplacesGlobal(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "global.log")

	req.NoError(Init(Config{Level: WarnLevel, Output: path}))
	t.Cleanup(func() { logger = zerolog.Nop() })

	Get().Info().Msg("dropped")
	Get().Warn().Msg("kept")

	data, err := os.ReadFile(path)
	req.NoError(err)
	req.NotContains(string(data), "dropped")
	req.Contains(string(data), "kept")
}
