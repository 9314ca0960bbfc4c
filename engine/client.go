// Package engine implements the REST client for the Nereid remote evaluator.
//
// The client is deliberately thin: each public method performs exactly one
// HTTP round trip, with no retries, caching, or deduplication. Remote
// failures are wrapped with the operation name and otherwise passed through
// to the caller unchanged.
package engine

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/nereid-ml/nereid/expr"
	"github.com/nereid-ml/nereid/frame"
	"github.com/nereid-ml/nereid/pkg/errors"
	"github.com/nereid-ml/nereid/pkg/log"
)

// Client talks to a Nereid engine over its REST API.
type Client struct {
	cfg  Config
	rest *resty.Client
	log  log.Logger
}

// NewClient creates a Client for the given configuration. Zero-value fields
// fall back to the connection defaults.
func NewClient(cfg Config) *Client {
	if cfg.URL == "" {
		cfg.URL = defaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	r := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout)
	if cfg.APIKey != "" {
		r.SetHeader("api-key", cfg.APIKey)
	}

	return &Client{
		cfg:  cfg,
		rest: r,
		log:  log.GetLoggerWithName("engine"),
	}
}

// newKey generates a client-side key for an engine object created on our
// behalf, so results are addressable before the response arrives.
func newKey(prefix string) string {
	return prefix + "_" + uuid.NewString()[:8]
}

type rapidsRequest struct {
	AST string `json:"ast"`
	ID  string `json:"id"`
}

type rapidsResponse struct {
	Key     string   `json:"key"`
	Columns []string `json:"columns"`
	Error   string   `json:"error"`
}

// Eval submits a symbolic expression to the engine's Rapids endpoint and
// returns a lazy handle to the resulting frame. The frame's data stays on
// the engine until fetched.
func (c *Client) Eval(ctx context.Context, node *expr.Node) (*frame.Frame, error) {
	ast, err := node.Rapids()
	if err != nil {
		return nil, err
	}

	req := rapidsRequest{AST: ast, ID: newKey("nereid")}
	var out rapidsResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/3/Rapids")
	if err != nil {
		return nil, errors.Wrapf(err, "eval %s", node.Op())
	}
	if resp.IsError() {
		return nil, errors.Newf("eval %s: engine returned status %d: %s", node.Op(), resp.StatusCode(), resp.String())
	}
	if out.Error != "" {
		return nil, errors.Newf("eval %s: %s", node.Op(), out.Error)
	}

	key := out.Key
	if key == "" {
		key = req.ID
	}
	c.log.Debug("expression evaluated",
		log.OperationKey, "eval",
		"ast.op", node.Op(),
		log.FrameKey, key,
	)
	return frame.New(key, out.Columns...), nil
}

type buildRequest struct {
	ModelID    string         `json:"model_id"`
	Parameters map[string]any `json:"parameters"`
}

type buildResponse struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

// Submit sends a training job to the engine's model builder for the given
// algorithm, consuming a flat parameter map as staged by an estimator. It
// returns a handle to the model being built.
func (c *Client) Submit(ctx context.Context, algo string, params map[string]any) (Model, error) {
	if algo == "" {
		return Model{}, errors.NewValueError("Submit", "algo must not be empty")
	}

	req := buildRequest{Parameters: params}
	if id, ok := params["model_id"].(string); ok && id != "" {
		req.ModelID = id
	} else {
		req.ModelID = newKey(algo)
	}

	var out buildResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/3/ModelBuilders/" + algo)
	if err != nil {
		return Model{}, errors.Wrapf(err, "submit %s", algo)
	}
	if resp.IsError() {
		return Model{}, errors.Newf("submit %s: engine returned status %d: %s", algo, resp.StatusCode(), resp.String())
	}
	if out.Error != "" {
		return Model{}, errors.Newf("submit %s: %s", algo, out.Error)
	}

	key := out.Key
	if key == "" {
		key = req.ModelID
	}
	c.log.Info("training job submitted",
		log.OperationKey, "submit",
		log.AlgoKey, algo,
		log.ModelKey, key,
	)
	return NewModel(key, algo), nil
}

type frameColumn struct {
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Strings []string  `json:"strings,omitempty"`
	Data    []float64 `json:"data,omitempty"`
}

type frameResponse struct {
	Columns []frameColumn `json:"columns"`
	Error   string        `json:"error"`
}

// Fetch pulls a lazy frame into local memory as a Table, preserving the
// column and row order produced by the engine. nrows < 0 fetches all rows.
func (c *Client) Fetch(ctx context.Context, fr *frame.Frame, nrows int) (*frame.Table, error) {
	if fr == nil || fr.Key() == "" {
		return nil, errors.NewValueError("Fetch", "frame reference has no key")
	}

	r := c.rest.R().SetContext(ctx)
	if nrows >= 0 {
		r.SetQueryParam("rows", fmt.Sprintf("%d", nrows))
	}
	var out frameResponse
	resp, err := r.SetResult(&out).Get("/3/Frames/" + fr.Key())
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", fr.Key())
	}
	if resp.IsError() {
		return nil, errors.Newf("fetch %s: engine returned status %d: %s", fr.Key(), resp.StatusCode(), resp.String())
	}
	if out.Error != "" {
		return nil, errors.Newf("fetch %s: %s", fr.Key(), out.Error)
	}

	cols := make([]frame.Column, len(out.Columns))
	for i, fc := range out.Columns {
		cols[i] = frame.Column{Name: fc.Name}
		if fc.Type == "string" {
			cols[i].Strings = fc.Strings
			if cols[i].Strings == nil {
				cols[i].Strings = []string{}
			}
		} else {
			cols[i].Nums = fc.Data
			if cols[i].Nums == nil {
				cols[i].Nums = []float64{}
			}
		}
	}
	tbl, err := frame.NewTable(cols)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", fr.Key())
	}

	c.log.Debug("frame materialized",
		log.OperationKey, "fetch",
		log.FrameKey, fr.Key(),
		"rows", tbl.NumRows(),
		"cols", tbl.NumCols(),
	)
	return tbl, nil
}
