package scan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xtding233/curvekit/internal/verify"
)

// Result tells whether a sink produced output.
type Result string

const (
	Written Result = "written"
	Skipped Result = "skipped" // output already exists
)

// Sink receives scan output for display or export.
type Sink interface {
	WritePoints(name string, pts []Point) (Result, error)
	WriteHistogram(name string, h verify.Histogram) (Result, error)
}

// CSVSink writes one <name>.csv per call into Dir. An existing file is left
// untouched and reported as Skipped, so rerunning an export is idempotent.
type CSVSink struct {
	Dir string
}

func (s CSVSink) Path(name string) string {
	return filepath.Join(s.Dir, name+".csv")
}

func (s CSVSink) WritePoints(name string, pts []Point) (Result, error) {
	rows := make([][]string, 0, len(pts)+1)
	rows = append(rows, []string{"x", "y"})
	for _, p := range pts {
		rows = append(rows, []string{formatFloat(p.X), formatFloat(p.Y)})
	}
	return s.write(name, rows)
}

func (s CSVSink) WriteHistogram(name string, h verify.Histogram) (Result, error) {
	rows := make([][]string, 0, len(h.Bins)+1)
	rows = append(rows, []string{"bin", "count"})
	for i, b := range h.Bins {
		rows = append(rows, []string{formatFloat(b), formatFloat(h.Counts[i])})
	}
	return s.write(name, rows)
}

func (s CSVSink) write(name string, rows [][]string) (Result, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("csv sink: %w", err)
	}
	path := s.Path(name)
	// O_EXCL makes the existence check and the create one step
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return Skipped, nil
		}
		return "", fmt.Errorf("csv sink: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("csv sink: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("csv sink: close %s: %w", path, err)
	}
	return Written, nil
}

// LogSink prints every point as "name x: y".
type LogSink struct {
	Logger *log.Logger // nil uses the standard logger
}

func (s LogSink) printf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (s LogSink) WritePoints(name string, pts []Point) (Result, error) {
	for _, p := range pts {
		s.printf("%s %g: %g", name, p.X, p.Y)
	}
	return Written, nil
}

func (s LogSink) WriteHistogram(name string, h verify.Histogram) (Result, error) {
	for i, b := range h.Bins {
		s.printf("%s %g: %g", name, b, h.Counts[i])
	}
	if h.Outside > 0 && len(h.Bins) > 0 {
		s.printf("%s: %d values outside [%g,%g]", name, h.Outside, h.Bins[0], h.Bins[len(h.Bins)-1])
	}
	return Written, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
