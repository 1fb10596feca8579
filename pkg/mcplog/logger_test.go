package mcplog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeParams(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		wantKeys []string
		skipKeys []string
	}{
		{
			name:  "nil map returns empty",
			input: nil,
		},
		{
			name:     "short string passes through",
			input:    map[string]any{"component": "Button"},
			wantKeys: []string{"component"},
		},
		{
			name:     "long brief replaced with _len key",
			input:    map[string]any{"brief": strings.Repeat("x", 200)},
			wantKeys: []string{"brief_len"},
			skipKeys: []string{"brief"},
		},
		{
			name:     "non-string values pass through",
			input:    map[string]any{"minRatio": 4.5, "includeValidation": true},
			wantKeys: []string{"minRatio", "includeValidation"},
		},
		{
			name:     "mixed short and long strings",
			input:    map[string]any{"foreground": "#666666", "brief": strings.Repeat("{", 100)},
			wantKeys: []string{"foreground", "brief_len"},
			skipKeys: []string{"brief"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := SanitizeParams(tc.input)
			for _, k := range tc.wantKeys {
				assert.Contains(t, out, k)
			}
			for _, k := range tc.skipKeys {
				assert.NotContains(t, out, k)
			}
		})
	}
}

func TestSanitizeParams_LenValue(t *testing.T) {
	out := SanitizeParams(map[string]any{"brief": strings.Repeat("a", 500)})
	assert.Equal(t, 500, out["brief_len"])
}

func TestResponseBytes_Nil(t *testing.T) {
	assert.Equal(t, 0, ResponseBytes(nil))
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(3))
	assert.Equal(t, 25, EstimateTokens(100))
	assert.Equal(t, 300, EstimateTokens(1200))
}

func TestLoggerWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.jsonl")

	logger, err := NewLogger(path)
	require.NoError(t, err)

	entries := []LogEntry{
		{Ts: time.Now().UTC().Format(time.RFC3339), Tool: "generate_tokens", Params: map[string]any{"brief_len": 420}, DurationMs: 12, ResponseBytes: 4000, TokensEst: 1000},
		{Ts: time.Now().UTC().Format(time.RFC3339), Tool: "validate_colors", Params: map[string]any{"foreground": "#666666", "background": "#ffffff"}, DurationMs: 1, ResponseBytes: 120, TokensEst: 30},
		{Ts: time.Now().UTC().Format(time.RFC3339), Tool: "accessibility_report", Params: map[string]any{}, DurationMs: 7, ResponseBytes: 900, TokensEst: 225},
	}
	for _, e := range entries {
		require.NoError(t, logger.Write(e))
	}
	require.NoError(t, logger.Close())

	got := readEntries(t, path)
	require.Len(t, got, len(entries))
	for i, e := range entries {
		assert.Equal(t, e.Tool, got[i].Tool)
		assert.Equal(t, e.DurationMs, got[i].DurationMs)
		assert.Equal(t, e.TokensEst, got[i].TokensEst)
	}
}

func TestLoggerConcurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.jsonl")

	logger, err := NewLogger(path)
	require.NoError(t, err)

	const goroutines = 50
	const writesEach = 10

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < writesEach; j++ {
				_ = logger.Write(LogEntry{
					Ts:   time.Now().UTC().Format(time.RFC3339),
					Tool: "generate_tokens",
				})
			}
		}()
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	// Every line must unmarshal cleanly; a torn write would not.
	got := readEntries(t, path)
	assert.Len(t, got, goroutines*writesEach)
}

func TestNewLoggerCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "mcp.jsonl")

	logger, err := NewLogger(path)
	require.NoError(t, err)
	defer logger.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewLoggerEmptyPath(t *testing.T) {
	logger, err := NewLogger("")
	require.NoError(t, err)
	assert.Nil(t, logger)
}

func readEntries(t *testing.T, path string) []LogEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if scanner.Text() == "" {
			continue
		}
		var e LogEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())
	return entries
}
