// Package snapshot exports the pheromone field as CSV frames that an external
// viewer can replay.
//
// Frame format: one line per grid row (y = 0 at the top), comma-delimited,
// no header. Walls, food and nest are written as the negative sentinels
// below; every other cell carries its pheromone intensity.
package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/antcolony/maze"
)

// Cell sentinels. Intensities are never negative, so they cannot collide.
const (
	WallValue = -1
	FoodValue = -2
	NestValue = -3
)

// ErrInvalidView is returned for a zero maze.View.
var ErrInvalidView = errors.New("snapshot: view is not initialized")

// Write encodes one frame of v to w.
func Write(w io.Writer, v maze.View) error {
	if !v.Valid() {
		return ErrInvalidView
	}
	cw := csv.NewWriter(w)
	row := make([]string, v.Width())
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			cell, err := encodeCell(v, maze.Pos{X: x, Y: y})
			if err != nil {
				return err
			}
			row[x] = cell
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("snapshot: row %d: %w", y, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeCell(v maze.View, p maze.Pos) (string, error) {
	k, err := v.Kind(p)
	if err != nil {
		return "", err
	}
	switch k {
	case maze.Wall:
		return strconv.Itoa(WallValue), nil
	case maze.Food:
		return strconv.Itoa(FoodValue), nil
	case maze.Nest:
		return strconv.Itoa(NestValue), nil
	}
	ph, err := v.Pheromone(p)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(ph, 'g', -1, 64), nil
}

// Read decodes a frame written by Write into rows of values indexed [y][x].
func Read(r io.Reader) ([][]float64, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	out := make([][]float64, len(records))
	for y, rec := range records {
		out[y] = make([]float64, len(rec))
		for x, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("snapshot: cell (%d,%d): %w", x, y, err)
			}
			out[y][x] = v
		}
	}
	return out, nil
}
