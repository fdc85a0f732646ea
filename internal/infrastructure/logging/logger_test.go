package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/tilequest/internal/domain/diag"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		wantErr bool
	}{
		{"json", config.LoggingConfig{Level: "debug", Encoding: "json"}, false},
		{"console", config.LoggingConfig{Level: "WARN", Encoding: "console"}, false},
		{"default encoding", config.LoggingConfig{Level: "info"}, false},
		{"bad level", config.LoggingConfig{Level: "loud"}, true},
		{"bad encoding", config.LoggingConfig{Level: "info", Encoding: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNew_Level(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "warn", Encoding: "json"})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestZapChannel_Emit(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ch := NewZapChannel(zap.New(core))

	diag.Warn(ch, diag.KindMissingClip, "no animation clip",
		diag.F("actor", "player"), diag.F("clip", "jump"))
	diag.Error(ch, diag.KindRuntime, "recovered", diag.F("frame", 12))
	ch.Emit(diag.Diagnostic{Severity: diag.SeverityDebug, Kind: diag.KindPrecondition, Message: "dbg"})

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "no animation clip", entries[0].Message)
	assert.Equal(t, "diag", entries[0].LoggerName)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "missing_clip", ctx["kind"])
	assert.Equal(t, "player", ctx["actor"])
	assert.Equal(t, "jump", ctx["clip"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(12), entries[1].ContextMap()["frame"])
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, err := New(config.LoggingConfig{Level: "info", Encoding: "json", Output: path})
	require.NoError(t, err)

	logger.Info("stage entered", zap.String("stage", "map01"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"stage":"map01"`)
}
