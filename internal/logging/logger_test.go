package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.WarnLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{" trace ", zerolog.TraceLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerWritesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf).Component("tagger")

	logger.Warn().Str("path", "a.txt").Msg("skipped")

	assert.Contains(t, buf.String(), "skipped")
	// ConsoleWriter colorizes field names, so only check the values
	assert.Contains(t, buf.String(), "tagger")
	assert.Contains(t, buf.String(), "a.txt")
}

func TestLoggerRespectsGlobalLevel(t *testing.T) {
	t.Cleanup(func() { SetGlobalLevel(zerolog.WarnLevel) })
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	SetGlobalLevel(zerolog.WarnLevel)
	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	SetGlobalLevel(zerolog.DebugLevel)
	logger.Debug().Msg("shown")
	logger.Error().Msg("failure")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "failure")
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	assert.NotPanics(t, func() {
		logger.Error().Msg("dropped")
		logger.Component("x").Debug().Msg("dropped too")
	})
}
