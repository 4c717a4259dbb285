// Package charts renders pie charts for chart-typed fields.
package charts

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/models"
	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/parser"
)

// ErrLegendMismatch indicates a legend whose keys match none of the field's values.
var ErrLegendMismatch = errors.New("legend matches no values")

// Slice is one pie slice handed to a Drawer.
type Slice struct {
	// Frequency is the number of matching values.
	Frequency int
	// Label is the display label, including the occurrence count.
	Label string
	// Color is the CSS hex fill color.
	Color string
}

// Drawer draws a pie chart image.
type Drawer interface {
	DrawPie(w io.Writer, slices []Slice) error
}

// Resolver provides field semantics.
type Resolver interface {
	Resolve(pos int) models.Semantic
}

// FileName returns the chart image name of the field at pos.
func FileName(pos int) string {
	return fmt.Sprintf("chart%d.svg", pos)
}

// Tally counts the field values matching each legend key.
// Entries without matches are dropped; if none remain the legend does not
// describe the data and ErrLegendMismatch is returned.
func Tally(values []string, sem models.ChartSemantic) ([]Slice, error) {
	var slices []Slice
	for _, item := range sem.Legend {
		frequency := 0
		for _, v := range values {
			if v == item.Key {
				frequency++
			}
		}
		if frequency == 0 {
			continue
		}
		slices = append(slices, Slice{
			Frequency: frequency,
			Label:     fmt.Sprintf("%s (%dx)", sem.Translate(item.Label), frequency),
			Color:     item.Color,
		})
	}

	if len(slices) == 0 {
		keys := make([]string, len(sem.Legend))
		for i, item := range sem.Legend {
			keys[i] = item.Key
		}
		return nil, fmt.Errorf("%w: values %q, keys %q", ErrLegendMismatch, values, keys)
	}
	return slices, nil
}

// Renderer writes chart images into a directory.
type Renderer struct {
	table    *models.Table
	resolver Resolver
	drawer   Drawer
	dir      string
	logger   *slog.Logger
}

// Config configures a Renderer.
type Config struct {
	// Dir is the output directory.
	Dir string
	// Drawer draws the images; defaults to a PieDrawer.
	Drawer Drawer
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewRenderer creates a Renderer for table.
func NewRenderer(table *models.Table, resolver Resolver, cfg Config) *Renderer {
	if cfg.Drawer == nil {
		cfg.Drawer = NewPieDrawer()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Renderer{
		table:    table,
		resolver: resolver,
		drawer:   cfg.Drawer,
		dir:      cfg.Dir,
		logger:   cfg.Logger,
	}
}

// RenderAll renders a chart for every chart-typed field, in field order.
// It returns the written file names.
func (r *Renderer) RenderAll() ([]string, error) {
	var written []string
	for pos := 0; pos < r.table.FieldCount(); pos++ {
		sem, ok := r.resolver.Resolve(pos).(models.ChartSemantic)
		if !ok {
			continue
		}
		if err := r.Render(pos, sem); err != nil {
			return written, err
		}
		written = append(written, FileName(pos))
	}
	return written, nil
}

// Render writes the chart image of the field at pos.
func (r *Renderer) Render(pos int, sem models.ChartSemantic) error {
	slices, err := Tally(parser.FieldValues(r.table, pos), sem)
	if err != nil {
		return fmt.Errorf("field %d: %w", pos+1, err)
	}

	path := filepath.Join(r.dir, FileName(pos))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.drawer.DrawPie(f, slices); err != nil {
		f.Close()
		return fmt.Errorf("draw %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	r.logger.Debug("chart written", "field", pos+1, "path", path, "slices", len(slices))
	return nil
}
