package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("info", "json", &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("component", "test").Msg("visible")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "info", entry["level"])
}

func TestSetupFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("nonsense", "json", &buf)

	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
	log.Info().Msg("dropped")
	assert.Empty(t, buf.String())
}

func TestSetupPretty(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("debug", "pretty", &buf)

	log.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}
