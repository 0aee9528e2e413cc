package snapshot

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/antcolony/maze"
)

// Pattern matches every frame file a Recorder writes.
const Pattern = "iter_*.csv"

// Recorder writes frames into Dir as iter_NNN.csv.
type Recorder struct {
	Dir    string
	Every  int          // write every Every-th round; <= 0 disables Record
	Logger *slog.Logger // optional
}

// FileName returns the frame name of round.
func FileName(round int) string {
	return fmt.Sprintf("iter_%03d.csv", round)
}

// Clear creates Dir if needed and removes frames left by a previous run.
func (r *Recorder) Clear() error {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	stale, err := filepath.Glob(filepath.Join(r.Dir, Pattern))
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	for _, f := range stale {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	if r.Logger != nil && len(stale) > 0 {
		r.Logger.Debug("stale snapshots removed", "dir", r.Dir, "count", len(stale))
	}
	return nil
}

// Initial writes the round-zero frame.
func (r *Recorder) Initial(v maze.View) error {
	_, err := r.Save(0, v)
	return err
}

// Record writes the frame of round when it falls on the Every cadence.
// Reports whether a file was written.
func (r *Recorder) Record(round int, v maze.View) (bool, error) {
	if r.Every <= 0 || round%r.Every != 0 {
		return false, nil
	}
	if _, err := r.Save(round, v); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes the frame of round unconditionally and returns its path.
func (r *Recorder) Save(round int, v maze.View) (string, error) {
	path := filepath.Join(r.Dir, FileName(round))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	if err := Write(f, v); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	if r.Logger != nil {
		r.Logger.Debug("snapshot written", "path", path, "round", round)
	}
	return path, nil
}
