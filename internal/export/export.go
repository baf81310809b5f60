// Package export writes the displayed curve to CSV, JSON, SVG or PNG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/hrfsim/internal/metrics"
	"github.com/san-kum/hrfsim/internal/plot"
	"github.com/san-kum/hrfsim/internal/session"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// Snapshot is what the figure shows at one moment, plus the parameters
// that produced it.
type Snapshot struct {
	Title      string               `json:"title"`
	Resolution float64              `json:"resolution"`
	Params     session.ParameterSet `json:"params"`
	XRange     plot.Range           `json:"x_range"`
	YRange     plot.Range           `json:"y_range"`
	Samples    int                  `json:"samples"`
	X          []float64            `json:"x"`
	Y          []float64            `json:"y"`
	Summary    metrics.Summary      `json:"summary"`
}

func Capture(s *session.Session) Snapshot {
	f := s.Figure()
	series := s.Series()
	return Snapshot{
		Title:      f.Title(),
		Resolution: session.Resolution,
		Params:     s.Params(),
		XRange:     f.XRange(),
		YRange:     f.YRange(),
		Samples:    series.Len(),
		X:          series.X,
		Y:          series.Y,
		Summary:    s.Summary(),
	}
}

func WriteCSV(w io.Writer, snap Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{plot.ColumnX, plot.ColumnY}); err != nil {
		return err
	}
	for i := range snap.Y {
		row := []string{
			strconv.FormatFloat(snap.X[i], 'f', 6, 64),
			strconv.FormatFloat(snap.Y[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// WriteFile picks the format from the file extension.
func WriteFile(path string, snap Snapshot) error {
	ext := strings.ToLower(filepath.Ext(path))
	var write func(io.Writer, Snapshot) error
	switch ext {
	case ".csv":
		write = WriteCSV
	case ".json":
		write = WriteJSON
	case ".svg":
		write = func(w io.Writer, s Snapshot) error {
			_, err := io.WriteString(w, SVG(s, 800, 400, "#00ccff"))
			return err
		}
	case ".png":
		write = func(w io.Writer, s Snapshot) error {
			return WritePNG(w, s, 800, 400)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
