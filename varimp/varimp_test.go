package varimp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nereid-ml/nereid/engine"
	"github.com/nereid-ml/nereid/frame"
	nerrors "github.com/nereid-ml/nereid/pkg/errors"
)

// spyRenderer records draw calls for inspection.
type spyRenderer struct {
	available bool
	calls     []BarChart
	err       error
}

func (s *spyRenderer) Available() bool { return s.available }

func (s *spyRenderer) DrawBarChart(c BarChart) error {
	s.calls = append(s.calls, c)
	return s.err
}

func newImportanceTable(t *testing.T, features int, row2 []float64) *frame.Table {
	t.Helper()
	cols := []frame.Column{
		{Name: "importance", Strings: []string{"Relative Importance", "Scaled Importance", "Percentage"}},
	}
	for i := 0; i < features; i++ {
		cols = append(cols, frame.Column{
			Name: fmt.Sprintf("f%d", i+1),
			Nums: []float64{row2[i] * 10, row2[i] * 2, row2[i]},
		})
	}
	tbl, err := frame.NewTable(cols)
	require.NoError(t, err)
	return tbl
}

func TestComputeRejectsNonFrameBeforeRemoteCall(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := engine.NewClient(engine.Config{URL: srv.URL})
	model := engine.NewModel("m", "psvm")

	_, err := Compute(context.Background(), c, model, "not-a-frame", true, "mse")
	require.Error(t, err)

	var ve *nerrors.ValueError
	require.True(t, nerrors.As(err, &ve))
	assert.Equal(t, "frame", ve.Op)
	assert.Equal(t, 0, calls, "no remote submission for an invalid frame")
}

func TestComputeLazy(t *testing.T) {
	paths := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths[r.URL.Path]++
		require.Equal(t, "/3/Rapids", r.URL.Path)
		var req struct {
			AST string `json:"ast"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, `(PermutationVarImp psvm_1 train.hex "mse")`, req.AST)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"key":     "varimp.hex",
			"columns": []string{"importance", "f1", "f2"},
		})
	}))
	defer srv.Close()

	c := engine.NewClient(engine.Config{URL: srv.URL})
	model := engine.NewModel("psvm_1", "psvm")

	res, err := Compute(context.Background(), c, model, frame.New("train.hex"), false, "mse")
	require.NoError(t, err)

	assert.Equal(t, "varimp.hex", res.Frame.Key())
	assert.Nil(t, res.Table, "lazy result must not be materialized")
	assert.Equal(t, 1, paths["/3/Rapids"], "exactly one submission per call")
}

func TestComputeMaterialized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/3/Rapids":
			_ = json.NewEncoder(w).Encode(map[string]any{"key": "varimp.hex"})
		case "/3/Frames/varimp.hex":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"columns": []any{
					map[string]any{"name": "importance", "type": "string", "strings": []string{"a", "b", "c"}},
					map[string]any{"name": "f1", "type": "real", "data": []float64{1, 2, 0.9}},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := engine.NewClient(engine.Config{URL: srv.URL})
	model := engine.NewModel("psvm_1", "psvm")

	res, err := Compute(context.Background(), c, model, frame.New("train.hex"), true, "mse")
	require.NoError(t, err)
	require.NotNil(t, res.Table)

	v, err := res.Table.Float(2, "f1")
	require.NoError(t, err)
	assert.Equal(t, 0.9, v)
}

func TestPlotSelectsFirstTenInTableOrder(t *testing.T) {
	row2 := []float64{5, 3, 9, 1, 7, 2, 8, 4, 6, 0.5, 0.4, 0.3}
	tbl := newImportanceTable(t, 12, row2)

	spy := &spyRenderer{available: true}
	require.NoError(t, Plot(tbl, "psvm", "mse", true, spy))

	require.Len(t, spy.calls, 1)
	chart := spy.calls[0]

	assert.Equal(t, "Permutation Variable Importance: psvm (mse)", chart.Title)
	assert.True(t, chart.Headless)

	// First 10 of 12 feature columns, original order, first entry topmost.
	require.Len(t, chart.Values, 10)
	assert.Equal(t, row2[:10], chart.Values)
	assert.Equal(t, []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10"}, chart.Labels)
}

func TestPlotFewerThanTenFeatures(t *testing.T) {
	tbl := newImportanceTable(t, 3, []float64{0.9, 0.5, 0.1})

	spy := &spyRenderer{available: true}
	require.NoError(t, Plot(tbl, "psvm", "mse", false, spy))

	require.Len(t, spy.calls, 1)
	assert.Len(t, spy.calls[0].Values, 3, "no padding below ten features")
	assert.False(t, spy.calls[0].Headless)
}

func TestPlotUnavailableRendererIsNoop(t *testing.T) {
	tbl := newImportanceTable(t, 3, []float64{0.9, 0.5, 0.1})

	spy := &spyRenderer{available: false}
	require.NoError(t, Plot(tbl, "psvm", "mse", true, spy))
	assert.Empty(t, spy.calls, "unavailable backend must issue zero draw calls")

	require.NoError(t, Plot(tbl, "psvm", "mse", true, nil))
	require.NoError(t, Plot(tbl, "psvm", "mse", true, NopRenderer{}))
}

func TestPlotRejectsShortTable(t *testing.T) {
	tbl, err := frame.NewTable([]frame.Column{
		{Name: "importance", Strings: []string{"Relative Importance", "Scaled Importance"}},
		{Name: "f1", Nums: []float64{1, 0.5}},
	})
	require.NoError(t, err)

	spy := &spyRenderer{available: true}
	err = Plot(tbl, "psvm", "mse", true, spy)
	require.Error(t, err)

	var ve *nerrors.ValueError
	require.True(t, nerrors.As(err, &ve))
	assert.Contains(t, err.Error(), "at least 3 rows")
	assert.Empty(t, spy.calls)
}

func TestPlotRejectsNilAndEmptyTables(t *testing.T) {
	spy := &spyRenderer{available: true}

	err := Plot(nil, "psvm", "mse", true, spy)
	require.Error(t, err)

	// Label column only: no feature columns to draw.
	tbl, terr := frame.NewTable([]frame.Column{
		{Name: "importance", Strings: []string{"a", "b", "c"}},
	})
	require.NoError(t, terr)
	err = Plot(tbl, "psvm", "mse", true, spy)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no feature columns")
	assert.Empty(t, spy.calls)
}

func TestPNGRendererWritesFile(t *testing.T) {
	dir := t.TempDir()
	r := &PNGRenderer{Dir: dir, File: "varimp.png"}
	require.True(t, r.Available())

	err := r.DrawBarChart(BarChart{
		Title:  "Permutation Variable Importance: psvm (mse)",
		Labels: []string{"f1", "f2", "f3"},
		Values: []float64{0.9, 0.5, 0.1},
	})
	require.NoError(t, err)
	assert.FileExists(t, dir+"/varimp.png")
}

func TestPNGRendererRejectsMismatchedSeries(t *testing.T) {
	r := &PNGRenderer{Dir: t.TempDir()}
	err := r.DrawBarChart(BarChart{Labels: []string{"f1"}, Values: []float64{1, 2}})
	require.Error(t, err)

	err = r.DrawBarChart(BarChart{})
	require.Error(t, err)
}
