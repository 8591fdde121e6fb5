package scan

import (
	"context"
	"fmt"

	"github.com/xtding233/curvekit/internal/library"
)

// Outcome records what happened to one exported curve.
type Outcome struct {
	Name   string
	Result Result
	Points int
}

// ExportLibrary scans every curve of lib over its design range, in name
// order, and writes it to sink.
func ExportLibrary(ctx context.Context, lib *library.Library, sink Sink) ([]Outcome, error) {
	var out []Outcome
	for _, name := range lib.Names() {
		c, _ := lib.Get(name)
		pts, err := CurveRange(ctx, c, c.Range.From, c.Range.To, c.Range.Step)
		if err != nil {
			return out, fmt.Errorf("export %s: %w", name, err)
		}
		res, err := sink.WritePoints(name, pts)
		if err != nil {
			return out, fmt.Errorf("export %s: %w", name, err)
		}
		out = append(out, Outcome{Name: name, Result: res, Points: len(pts)})
	}
	return out, nil
}
