package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/fire-planner/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fireplan.log")
	logger, err := New(Config{Level: "debug", Format: "json", OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Debugf("plan %q solved", "Base Plan")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.True(t, strings.HasPrefix(line, "{"))
	assert.Contains(t, line, `"msg":"plan \"Base Plan\" solved"`)
	assert.Contains(t, line, `"ts"`)
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fireplan.log")
	logger, err := New(Config{Level: "warn", Format: "console", OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Infof("hidden")
	logger.Warnf("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewBadPath(t *testing.T) {
	_, err := New(Config{OutputPaths: []string{filepath.Join(t.TempDir(), "missing", "x.log")}})
	assert.Error(t, err)
}

func TestSugaredLoggerDrivesEngine(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var l calculation.Logger = NewFromCore(core)

	engine := calculation.NewPlanEngine()
	engine.SetLogger(l)
	engine.Logger.Infof("engine ready: %d", 1)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "engine ready: 1", logs.All()[0].Message)
}
