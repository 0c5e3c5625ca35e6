package log

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
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("none"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("chatty"))
}

func TestWithComponentWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("weave")
	l.Debug().Msg("hidden")
	l.Info().Int("cells", 4).Msg("built")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "weave", entry["component"])
	assert.Equal(t, "built", entry["message"])
	assert.EqualValues(t, 4, entry["cells"])
}
