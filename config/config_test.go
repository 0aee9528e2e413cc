package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "antmaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 75, cfg.Maze.Width)
	assert.Equal(t, 75, cfg.Maze.Height)
	assert.True(t, cfg.Maze.Hard)
	assert.Equal(t, 0.2, cfg.Maze.WallChance)
	assert.Equal(t, colony.DefaultConfig(), cfg.Colony)
	assert.Equal(t, "visualizacao", cfg.Snapshot.Dir)
	assert.Equal(t, 2, cfg.Snapshot.Every)
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := writeFile(t, `
maze:
  width: 21
  hard: false
colony:
  ants: 12
  bonus_policy: on_success
  stagnation_limit: -1
log:
  format: json
metrics:
  addr: "localhost:9090"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 21, cfg.Maze.Width)
	assert.Equal(t, 75, cfg.Maze.Height, "untouched keys keep defaults")
	assert.False(t, cfg.Maze.Hard)
	assert.Equal(t, 12, cfg.Colony.Ants)
	assert.Equal(t, 350, cfg.Colony.Iterations)
	assert.Equal(t, colony.BonusOnSuccess, cfg.Colony.BonusPolicy)
	assert.Equal(t, -1, cfg.Colony.StagnationLimit)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "localhost:9090", cfg.Metrics.Addr)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "maze: {width: 5}\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "colony: {evaporation_rate: 2}\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "colony: {elite: 0}\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "log: {level: loud}\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "metrics: {addr: nope}\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "trace: {exporter: jaeger}\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "colony: {antz: 3}\n"))
	assert.Error(t, err, "unknown keys are rejected")
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_Env(t *testing.T) {
	assert.Equal(t,
		[]string{"ANTMAZE_SEED", "ANTMAZE_MAZE_SEED", "ANTMAZE_LOG_LEVEL", "ANTMAZE_LOG_FORMAT",
			"ANTMAZE_METRICS_ADDR", "ANTMAZE_SNAPSHOT_DIR", "ANTMAZE_TRACE"},
		[]string{config.EnvSeed, config.EnvMazeSeed, config.EnvLogLevel, config.EnvLogFormat,
			config.EnvMetricsAddr, config.EnvSnapshotDir, config.EnvTrace})

	t.Setenv(config.EnvSeed, "77")
	t.Setenv(config.EnvMazeSeed, "78")
	t.Setenv(config.EnvLogLevel, "DEBUG")
	t.Setenv(config.EnvMetricsAddr, ":9100")
	t.Setenv(config.EnvSnapshotDir, "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(77), cfg.Colony.Seed)
	assert.Equal(t, int64(78), cfg.Maze.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Empty(t, cfg.Snapshot.Dir)
}

func TestLoad_EnvBadSeed(t *testing.T) {
	for _, name := range []string{config.EnvSeed, config.EnvMazeSeed} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, "0x1f")
			_, err := config.Load("")
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := config.Default()
	want.Colony.Seed = 5
	data, err := config.Marshal(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "evaporation_rate: 0.35")

	got := config.Config{}
	require.NoError(t, config.Parse(data, &got))
	assert.Equal(t, want, got)
}

func TestLogConfig(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, lvl := range cases {
		assert.Equal(t, lvl, config.LogConfig{Level: name}.SlogLevel(), name)
	}

	var buf bytes.Buffer
	config.LogConfig{Level: "info", Format: "json"}.NewLogger(&buf).Info("hello", "k", 1)
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	config.LogConfig{Level: "warn", Format: "text"}.NewLogger(&buf).Info("dropped")
	assert.Empty(t, buf.String())

	buf.Reset()
	config.LogConfig{Level: "info", Format: "auto"}.NewLogger(&buf).Info("piped")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), "non-terminal writers get JSON")
}
