package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		verbose        bool
		expectDebugOut bool
	}{
		{"info console", false, false},
		{"verbose console", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "logs")
			var console bytes.Buffer

			logger, logFile, err := InitLogger(Options{Env: "test", Dir: dir, Verbose: tt.verbose, Console: &console})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(filepath.Base(logFile), "test_"))

			logger.Debug("Schedule loaded", zap.Int("talks", 3))
			logger.Info("Evaluation run finished")
			_ = logger.Sync()

			assert.Contains(t, console.String(), "Evaluation run finished")
			assert.Equal(t, tt.expectDebugOut, strings.Contains(console.String(), "Schedule loaded"))

			data, err := os.ReadFile(logFile)
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(string(data)), "\n")
			require.Len(t, lines, 2)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
			assert.Equal(t, "debug", entry["level"])
			assert.Equal(t, "Schedule loaded", entry["msg"])
			assert.Equal(t, float64(3), entry["talks"])
			assert.Equal(t, "test", entry["env"])
			assert.Contains(t, entry, "timestamp")
		})
	}
}

func TestInitLogger_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, _, err := InitLogger(Options{Env: "test", Dir: filepath.Join(file, "logs")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create logs directory")
}
