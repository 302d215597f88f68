package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Component(New(&buf, "info", true), "hook")

	l.Debug().Msg("dropped")
	l.Info().Str("reason", "obstructed").Msg("hook released")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hook released", rec["message"])
	assert.Equal(t, "hook", rec["component"])
	assert.Equal(t, "obstructed", rec["reason"])
	assert.Contains(t, rec, "time")
}

func TestSampled(t *testing.T) {
	var buf bytes.Buffer
	l := Sampled(New(&buf, "debug", true))

	for i := 0; i < 50; i++ {
		l.Debug().Int("i", i).Msg("tick")
	}
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.GreaterOrEqual(t, lines, 5)
	assert.Less(t, lines, 50)
}
