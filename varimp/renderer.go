package varimp

// BarChart describes one horizontal bar chart draw request. Bars are listed
// in display order from top to bottom: Labels[0] and Values[0] belong to the
// topmost bar. Renderers that place position zero at the bottom (the usual
// chart-library convention) must reverse the assignment themselves.
type BarChart struct {
	Title    string
	Labels   []string
	Values   []float64
	Headless bool
}

// BarChartRenderer is the injectable chart backend. Environments without a
// rendering capability substitute NopRenderer (or report Available false),
// turning plotting into a silent no-op rather than an error.
type BarChartRenderer interface {
	Available() bool
	DrawBarChart(chart BarChart) error
}

// NopRenderer is a BarChartRenderer for environments without a chart backend.
type NopRenderer struct{}

// Available reports that no backend is present.
func (NopRenderer) Available() bool { return false }

// DrawBarChart does nothing.
func (NopRenderer) DrawBarChart(BarChart) error { return nil }
