package varimp

import (
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nereid-ml/nereid/pkg/errors"
)

// barColor matches the engine UI's importance chart color (#1F77B4).
var barColor = color.RGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF}

// PNGRenderer draws bar charts with gonum/plot and persists them as PNG
// files. gonum/plot has no interactive display, so headless and interactive
// requests both write to Dir; the flag is accepted for interface parity.
type PNGRenderer struct {
	// Dir is the output directory. Empty means the working directory.
	Dir string
	// File overrides the output file name. Empty means "permutation_varimp.png".
	File string
}

// DefaultRenderer returns a PNGRenderer writing into the working directory.
func DefaultRenderer() BarChartRenderer {
	return &PNGRenderer{}
}

// Available reports that the gonum/plot backend can render.
func (r *PNGRenderer) Available() bool { return true }

// DrawBarChart renders the chart as a horizontal bar plot, topmost entry
// first, and saves it as a PNG.
func (r *PNGRenderer) DrawBarChart(c BarChart) error {
	if len(c.Values) == 0 || len(c.Values) != len(c.Labels) {
		return errors.NewValueError("DrawBarChart", "labels and values must be non-empty and of equal length")
	}

	p := plot.New()
	p.Title.Text = c.Title

	// gonum/plot draws index 0 at the bottom; reverse so the first entry
	// lands on top.
	n := len(c.Values)
	vals := make(plotter.Values, n)
	names := make([]string, n)
	for i := 0; i < n; i++ {
		vals[i] = c.Values[n-1-i]
		names[i] = c.Labels[n-1-i]
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "building bar chart")
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(names...)

	name := r.File
	if name == "" {
		name = "permutation_varimp.png"
	}
	out := filepath.Join(r.Dir, name)
	if err := p.Save(14*vg.Inch, 10*vg.Inch, out); err != nil {
		return errors.Wrapf(err, "saving chart to %s", out)
	}
	return nil
}
