// Package varimp requests permutation feature importance from the Nereid
// engine and renders the result.
//
// Permutation importance is computed entirely engine-side by shuffling one
// feature at a time and measuring the loss degradation; the client builds the
// symbolic request, submits it once, and either keeps the lazy frame handle
// or materializes it locally.
package varimp

import (
	"context"
	"fmt"

	"github.com/nereid-ml/nereid/engine"
	"github.com/nereid-ml/nereid/expr"
	"github.com/nereid-ml/nereid/frame"
	"github.com/nereid-ml/nereid/pkg/errors"
	"github.com/nereid-ml/nereid/pkg/log"
)

// labelColumn is the conventional name of the importance table's string
// column; its rows label the numeric rows ("Relative Importance", "Scaled
// Importance", "Percentage").
const labelColumn = "importance"

// scaledRow is the row index holding the values that get plotted, by the
// engine's fixed layout of the importance table.
const scaledRow = 2

// maxPlotFeatures caps the number of bars drawn.
const maxPlotFeatures = 10

// Result is the outcome of a Compute call. Frame always references the
// engine-side importance table; Table is its local materialization and is
// nil when materialization was not requested.
type Result struct {
	Frame *frame.Frame
	Table *frame.Table
}

// Compute requests permutation variable importance for a trained model over
// fr, using the named loss metric (e.g. "mse"; passed through to the engine
// uninterpreted).
//
// fr must be a frame reference; anything else fails before any remote call
// is made. Exactly one evaluation is submitted per call, with no caching or
// deduplication; materialize adds one fetch to pull the result into local
// memory.
func Compute(ctx context.Context, c *engine.Client, model engine.Model, fr any, materialize bool, metric string) (*Result, error) {
	f, err := frame.Validate(fr, "frame")
	if err != nil {
		return nil, err
	}

	node := expr.NewNode("PermutationVarImp", model, f, metric)
	lazy, err := c.Eval(ctx, node)
	if err != nil {
		return nil, err
	}

	log.GetLoggerWithName("varimp").Info("permutation importance computed",
		log.OperationKey, "varimp",
		log.ModelKey, model.Key(),
		log.FrameKey, f.Key(),
		"metric", metric,
	)

	res := &Result{Frame: lazy}
	if materialize {
		tbl, err := c.Fetch(ctx, lazy, -1)
		if err != nil {
			return nil, err
		}
		res.Table = tbl
	}
	return res, nil
}

// Plot renders a previously computed importance table as a horizontal bar
// chart: the scaled-importance row of the first ten feature columns, in the
// table's own column order (the engine emits columns most significant first;
// no client-side re-sort), with the first column's bar drawn at the top.
//
// The label column is skipped. A nil or unavailable renderer makes Plot a
// silent no-op. headless selects file output over interactive display in the
// renderer; it does not change data selection or layout.
func Plot(importance *frame.Table, algoName, metric string, headless bool, r BarChartRenderer) error {
	if importance == nil {
		return errors.NewValueError("Plot", "importance table is nil")
	}
	if importance.NumRows() <= scaledRow {
		return errors.NewValueError("Plot", fmt.Sprintf("importance table needs at least %d rows, got %d", scaledRow+1, importance.NumRows()))
	}

	var labels []string
	var values []float64
	for _, col := range importance.Columns() {
		if col == labelColumn {
			continue
		}
		v, err := importance.Float(scaledRow, col)
		if err != nil {
			return err
		}
		labels = append(labels, col)
		values = append(values, v)
	}
	if len(values) == 0 {
		return errors.NewValueError("Plot", "importance table has no feature columns")
	}
	if len(values) > maxPlotFeatures {
		labels = labels[:maxPlotFeatures]
		values = values[:maxPlotFeatures]
	}

	if r == nil || !r.Available() {
		return nil
	}

	return r.DrawBarChart(BarChart{
		Title:    fmt.Sprintf("Permutation Variable Importance: %s (%s)", algoName, metric),
		Labels:   labels,
		Values:   values,
		Headless: headless,
	})
}
