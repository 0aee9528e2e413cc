// Package config loads the antmaze run configuration.
//
// Priority: environment > YAML file > Default(). Validation uses
// go-playground/validator struct tags, including the tags carried by the
// embedded colony.Config.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/mazegen"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full document.
type Config struct {
	Maze     MazeConfig     `yaml:"maze"`
	Colony   colony.Config  `yaml:"colony"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Trace    TraceConfig    `yaml:"trace"`
}

// MazeConfig selects the layout.
type MazeConfig struct {
	Width      int     `yaml:"width" validate:"gte=11"`
	Height     int     `yaml:"height" validate:"gte=11"`
	Hard       bool    `yaml:"hard"`
	WallChance float64 `yaml:"wall_chance" validate:"gte=0,lt=1"`
	// MaxAttempts caps hard-maze retries; 0 retries until solvable.
	MaxAttempts int `yaml:"max_attempts" validate:"gte=0"`
	// Seed drives maze generation; 0 draws a random one.
	Seed int64 `yaml:"seed"`
}

// SnapshotConfig controls CSV frame export. An empty Dir disables it.
type SnapshotConfig struct {
	Dir   string `yaml:"dir"`
	Every int    `yaml:"every" validate:"gte=0"`
}

// LogConfig selects the slog handler. Format "auto" picks text on a
// terminal and JSON otherwise.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json auto"`
}

// MetricsConfig exposes Prometheus metrics on Addr when it is set.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// TraceConfig selects the span exporter: "none" or "stdout" (pretty JSON on
// stderr).
type TraceConfig struct {
	Exporter string `yaml:"exporter" validate:"oneof=none stdout"`
}

// Default returns the reference run: a 75×75 hard maze, 100 ants for 350
// rounds, a frame every 2 rounds into ./visualizacao.
func Default() Config {
	return Config{
		Maze: MazeConfig{
			Width:      75,
			Height:     75,
			Hard:       true,
			WallChance: mazegen.DefaultWallChance,
		},
		Colony:   colony.DefaultConfig(),
		Snapshot: SnapshotConfig{Dir: "visualizacao", Every: 2},
		Log:      LogConfig{Level: "info", Format: "text"},
		Trace:    TraceConfig{Exporter: "none"},
	}
}

// Load overlays the YAML file at path (skipped when empty) and environment
// overrides on Default, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := Parse(data, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML data over cfg. Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse: %w", err)
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every section. Returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: %s %s", fe.Namespace(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Environment overrides.
const (
	EnvSeed        = "ANTMAZE_SEED"
	EnvMazeSeed    = "ANTMAZE_MAZE_SEED"
	EnvLogLevel    = "ANTMAZE_LOG_LEVEL"
	EnvLogFormat   = "ANTMAZE_LOG_FORMAT"
	EnvMetricsAddr = "ANTMAZE_METRICS_ADDR"
	EnvSnapshotDir = "ANTMAZE_SNAPSHOT_DIR"
	EnvTrace       = "ANTMAZE_TRACE"
)

// applyEnv overlays the Env* variables on cfg. A seed that does not parse as
// a base-10 int64 is a configuration error.
func applyEnv(cfg *Config) error {
	for _, sv := range []struct {
		name string
		dst  *int64
	}{
		{EnvSeed, &cfg.Colony.Seed},
		{EnvMazeSeed, &cfg.Maze.Seed},
	} {
		v := os.Getenv(sv.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, sv.name, v)
		}
		*sv.dst = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvMetricsAddr); ok {
		cfg.Metrics.Addr = v
	}
	if v, ok := os.LookupEnv(EnvSnapshotDir); ok {
		cfg.Snapshot.Dir = v
	}
	if v := os.Getenv(EnvTrace); v != "" {
		cfg.Trace.Exporter = strings.ToLower(v)
	}
	return nil
}

// SlogLevel maps the configured level name to slog.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text or JSON logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	format := l.Format
	if format == "auto" {
		format = "json"
		if isTerminal(w) {
			format = "text"
		}
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// isTerminal reports whether w is a terminal (or a Cygwin pty).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
