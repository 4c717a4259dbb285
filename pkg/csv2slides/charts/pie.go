package charts

import (
	"io"

	"github.com/ukaji3/csv2slides-go/pkg/csv2slides/parser"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default pie chart dimensions in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// PieDrawer draws SVG pie charts with go-chart.
type PieDrawer struct {
	Width  int
	Height int
}

// NewPieDrawer returns a PieDrawer with default dimensions.
func NewPieDrawer() *PieDrawer {
	return &PieDrawer{Width: DefaultWidth, Height: DefaultHeight}
}

// DrawPie renders slices as an SVG pie chart.
func (d *PieDrawer) DrawPie(w io.Writer, slices []Slice) error {
	values := make([]chart.Value, len(slices))
	for i, s := range slices {
		fill, err := parser.ParseColor(s.Color)
		if err != nil {
			return err
		}
		values[i] = chart.Value{
			Value: float64(s.Frequency),
			Label: s.Label,
			Style: chart.Style{
				FillColor:   drawing.Color{R: fill.R, G: fill.G, B: fill.B, A: fill.A},
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		}
	}

	pie := chart.PieChart{
		Width:  d.Width,
		Height: d.Height,
		Values: values,
	}
	return pie.Render(chart.SVG, w)
}
