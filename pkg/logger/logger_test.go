package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", "info", &buf)

	Info("blog created", map[string]interface{}{"blog_id": "abc"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "blog created", entry["message"])
	assert.Equal(t, "abc", entry["blog_id"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", "warn", &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	Info("hidden", nil)
	Debug("hidden too")
	assert.Zero(t, buf.Len())

	ErrorWithFields("store fault", errors.New("boom"), map[string]interface{}{"op": "find"})
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), `"op":"find"`)
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", "loud", &buf)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
