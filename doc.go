// Package nereid provides a Go client binding for the Nereid remote
// machine-learning engine.
//
// The library is a thin, typed layer over the engine's REST API: estimators
// stage and validate hyperparameters client-side, frames reference tabular
// data living on the engine, and symbolic expressions request computations
// that are executed remotely. No training, solving, or numeric optimization
// happens in this module; the client validates inputs, submits requests, and
// materializes or renders results.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/nereid-ml/nereid/engine"
//	    "github.com/nereid-ml/nereid/estimators"
//	    "github.com/nereid-ml/nereid/frame"
//	    "github.com/nereid-ml/nereid/varimp"
//	)
//
//	func main() {
//	    ctx := context.Background()
//	    c := engine.NewClient(engine.Config{URL: "http://localhost:54321"})
//
//	    train := frame.New("train.hex", "x1", "x2", "y")
//	    est, err := estimators.NewSVMEstimator(
//	        estimators.Param{Name: "training_frame", Value: train},
//	        estimators.Param{Name: "response_column", Value: "y"},
//	        estimators.Param{Name: "hyper_param", Value: 0.5},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model, err := est.Fit(ctx, c)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    res, err := varimp.Compute(ctx, c, model, train, true, "mse")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = varimp.Plot(res.Table, est.Algo(), "mse", true, varimp.DefaultRenderer())
//	}
//
// # Packages
//
//   - engine: REST client for the remote evaluator (eval, train submission, fetch)
//   - expr: symbolic expression builder for remote computation requests
//   - frame: lazy remote table handles and local materialized tables
//   - estimators: validated hyperparameter containers (PSVM)
//   - varimp: permutation feature importance computation and plotting
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging interface backed by zerolog
package nereid
