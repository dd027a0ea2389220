package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/gridpad/internal/anim"
	"github.com/san-kum/gridpad/internal/geom"
)

// Trajectory is a recorded settle: one sample per animation frame.
type Trajectory struct {
	Method  string             `json:"method"`
	FPS     int                `json:"fps"`
	From    geom.Cell          `json:"from"`
	To      geom.Cell          `json:"to"`
	Frames  int                `json:"frames"`
	X       []float64          `json:"x"`
	Y       []float64          `json:"y"`
	Settled []bool             `json:"settled"`
	Metrics map[string]float64 `json:"metrics"`
}

func (t *Trajectory) Append(f anim.Frame) {
	t.X = append(t.X, f.Position.X)
	t.Y = append(t.Y, f.Position.Y)
	t.Settled = append(t.Settled, f.Settled)
	t.Frames = len(t.X)
}

func (t *Trajectory) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

func (t *Trajectory) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "t", "x", "y", "settled"}); err != nil {
		return err
	}
	dt := 1.0 / float64(t.FPS)
	for i := range t.X {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(float64(i+1)*dt, 'f', 4, 64),
			strconv.FormatFloat(t.X[i], 'f', 4, 64),
			strconv.FormatFloat(t.Y[i], 'f', 4, 64),
			strconv.FormatBool(t.Settled[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save picks CSV or JSON from the file extension.
func (t *Trajectory) Save(path string) error {
	var write func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		write = t.WriteJSON
	case ".csv":
		write = t.WriteCSV
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return write(file)
}
