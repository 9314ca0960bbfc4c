package estimators

import (
	"context"

	"github.com/nereid-ml/nereid/engine"
	"github.com/nereid-ml/nereid/frame"
	"github.com/nereid-ml/nereid/pkg/errors"
)

// SVMAlgo is the engine-side algorithm name for the Proximal Support Vector
// Machine builder.
const SVMAlgo = "psvm"

// svmKernelTypes enumerates the accepted values of kernel_type.
var svmKernelTypes = []string{"gaussian"}

// SVMEstimator stages and validates hyperparameters for a PSVM training job.
// The solver itself (interior-point method over an Incomplete Cholesky
// Factorization of the kernel matrix) runs entirely on the engine; this
// object only holds the validated parameter map that the submission consumes.
type SVMEstimator struct {
	base
	model engine.Model
}

// NewSVMEstimator builds an estimator from name/value pairs. Pairs are
// validated and applied one at a time, in order; the first violation stops
// construction with an error identifying the offending pair. The name
// "Lambda" is rewritten to its canonical form "lambda_" before dispatch.
func NewSVMEstimator(params ...Param) (*SVMEstimator, error) {
	e := &SVMEstimator{base: newBase()}
	for _, p := range params {
		name := p.Name
		if name == "Lambda" {
			name = "lambda_"
		}
		if err := e.Set(name, p.Value); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Set assigns a value to a recognized parameter by name, triggering the same
// validation as the named setter. Names outside the recognized set fail with
// an UnknownParameterError.
func (e *SVMEstimator) Set(name string, v any) error {
	set, ok := e.setters()[name]
	if !ok {
		return errors.NewUnknownParameterError(name, v)
	}
	return set(v)
}

// setters is the static dispatch table from parameter name to setter. The
// recognized-name set of the estimator is exactly the key set of this table.
func (e *SVMEstimator) setters() map[string]func(any) error {
	return map[string]func(any) error{
		"model_id":                 e.SetModelID,
		"training_frame":           e.SetTrainingFrame,
		"validation_frame":         e.SetValidationFrame,
		"response_column":          e.SetResponseColumn,
		"ignored_columns":          e.SetIgnoredColumns,
		"ignore_const_cols":        e.SetIgnoreConstCols,
		"hyper_param":              e.SetHyperParam,
		"kernel_type":              e.SetKernelType,
		"gamma":                    e.SetGamma,
		"rank_ratio":               e.SetRankRatio,
		"positive_weight":          e.SetPositiveWeight,
		"negative_weight":          e.SetNegativeWeight,
		"disable_training_metrics": e.SetDisableTrainingMetrics,
		"sv_threshold":             e.SetSVThreshold,
		"fact_threshold":           e.SetFactThreshold,
		"feasible_threshold":       e.SetFeasibleThreshold,
		"surrogate_gap_threshold":  e.SetSurrogateGapThreshold,
		"mu_factor":                e.SetMuFactor,
		"max_iterations":           e.SetMaxIterations,
		"seed":                     e.SetSeed,
	}
}

// ParamNames returns the recognized parameter names of the estimator.
func (e *SVMEstimator) ParamNames() []string {
	return []string{
		"model_id", "training_frame", "validation_frame", "response_column",
		"ignored_columns", "ignore_const_cols", "hyper_param", "kernel_type",
		"gamma", "rank_ratio", "positive_weight", "negative_weight",
		"disable_training_metrics", "sv_threshold", "fact_threshold",
		"feasible_threshold", "surrogate_gap_threshold", "mu_factor",
		"max_iterations", "seed",
	}
}

// SVMDefaults returns the engine-side defaults that apply to fields left
// unset. Fields absent from this map have no default.
func SVMDefaults() map[string]any {
	return map[string]any{
		"ignore_const_cols":        true,
		"hyper_param":              1.0,
		"kernel_type":              "gaussian",
		"gamma":                    -1.0,
		"rank_ratio":               -1.0,
		"positive_weight":          1.0,
		"negative_weight":          1.0,
		"disable_training_metrics": true,
		"sv_threshold":             1e-4,
		"fact_threshold":           1e-5,
		"feasible_threshold":       1e-3,
		"surrogate_gap_threshold":  1e-3,
		"mu_factor":                10.0,
		"max_iterations":           200,
		"seed":                     int64(-1),
	}
}

// typed setter helpers; a nil value unsets the field so the engine default
// applies.

func (e *SVMEstimator) setFloat(name string, v any) error {
	if v == nil {
		e.unset(name)
		return nil
	}
	f, ok := numericValue(v)
	if !ok {
		return errors.NewValidationError(name, "numeric", v)
	}
	e.store(name, f)
	return nil
}

func (e *SVMEstimator) setInt(name string, v any) error {
	if v == nil {
		e.unset(name)
		return nil
	}
	n, ok := integerValue(v)
	if !ok {
		return errors.NewValidationError(name, "integer", v)
	}
	e.store(name, n)
	return nil
}

func (e *SVMEstimator) setBool(name string, v any) error {
	if v == nil {
		e.unset(name)
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return errors.NewValidationError(name, "bool", v)
	}
	e.store(name, b)
	return nil
}

func (e *SVMEstimator) setString(name string, v any) error {
	if v == nil {
		e.unset(name)
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return errors.NewValidationError(name, "string", v)
	}
	e.store(name, s)
	return nil
}

func (e *SVMEstimator) setFrame(name string, v any) error {
	if v == nil {
		e.unset(name)
		return nil
	}
	fr, err := frame.Validate(v, name)
	if err != nil {
		return err
	}
	e.store(name, fr)
	return nil
}

// SetModelID names the resulting engine-side model. Type: string.
func (e *SVMEstimator) SetModelID(v any) error {
	if err := e.setString("model_id", v); err != nil {
		return err
	}
	if v == nil {
		e.id = ""
	} else {
		e.id = v.(string)
	}
	return nil
}

// SetTrainingFrame sets the training data frame. Type: Frame.
func (e *SVMEstimator) SetTrainingFrame(v any) error { return e.setFrame("training_frame", v) }

// TrainingFrame returns the staged training frame.
func (e *SVMEstimator) TrainingFrame() (*frame.Frame, bool) { return e.getFrame("training_frame") }

// SetValidationFrame sets the validation data frame. Type: Frame.
func (e *SVMEstimator) SetValidationFrame(v any) error { return e.setFrame("validation_frame", v) }

// ValidationFrame returns the staged validation frame.
func (e *SVMEstimator) ValidationFrame() (*frame.Frame, bool) { return e.getFrame("validation_frame") }

// SetResponseColumn sets the response variable column. Type: string.
func (e *SVMEstimator) SetResponseColumn(v any) error { return e.setString("response_column", v) }

// ResponseColumn returns the staged response column.
func (e *SVMEstimator) ResponseColumn() (string, bool) { return e.getString("response_column") }

// SetIgnoredColumns names columns to ignore for training. Type: []string.
func (e *SVMEstimator) SetIgnoredColumns(v any) error {
	if v == nil {
		e.unset("ignored_columns")
		return nil
	}
	s, ok := stringSliceValue(v)
	if !ok {
		return errors.NewValidationError("ignored_columns", "[]string", v)
	}
	e.store("ignored_columns", s)
	return nil
}

// IgnoredColumns returns the staged ignored column names.
func (e *SVMEstimator) IgnoredColumns() ([]string, bool) {
	v, ok := e.Get("ignored_columns")
	if !ok {
		return nil, false
	}
	return v.([]string), true
}

// SetIgnoreConstCols toggles ignoring constant columns. Type: bool, default true.
func (e *SVMEstimator) SetIgnoreConstCols(v any) error { return e.setBool("ignore_const_cols", v) }

// IgnoreConstCols returns the staged ignore_const_cols flag.
func (e *SVMEstimator) IgnoreConstCols() (bool, bool) { return e.getBool("ignore_const_cols") }

// SetHyperParam sets the penalty parameter C of the error term. Type: numeric,
// default 1.
func (e *SVMEstimator) SetHyperParam(v any) error { return e.setFloat("hyper_param", v) }

// HyperParam returns the staged penalty parameter.
func (e *SVMEstimator) HyperParam() (float64, bool) { return e.getFloat("hyper_param") }

// SetKernelType sets the kernel. One of: "gaussian" (default).
func (e *SVMEstimator) SetKernelType(v any) error {
	if v == nil {
		e.unset("kernel_type")
		return nil
	}
	s, ok := v.(string)
	if ok {
		for _, k := range svmKernelTypes {
			if s == k {
				e.store("kernel_type", s)
				return nil
			}
		}
	}
	return errors.NewValidationError("kernel_type", `enum{"gaussian"}`, v)
}

// KernelType returns the staged kernel type.
func (e *SVMEstimator) KernelType() (string, bool) { return e.getString("kernel_type") }

// SetGamma sets the kernel coefficient (RBF gamma for the gaussian kernel;
// -1 means 1/#features). Type: numeric, default -1.
func (e *SVMEstimator) SetGamma(v any) error { return e.setFloat("gamma", v) }

// Gamma returns the staged kernel coefficient.
func (e *SVMEstimator) Gamma() (float64, bool) { return e.getFloat("gamma") }

// SetRankRatio sets the desired rank of the ICF matrix as a ratio of input
// rows (-1 means sqrt(#rows)). Type: numeric, default -1.
func (e *SVMEstimator) SetRankRatio(v any) error { return e.setFloat("rank_ratio", v) }

// RankRatio returns the staged ICF rank ratio.
func (e *SVMEstimator) RankRatio() (float64, bool) { return e.getFloat("rank_ratio") }

// SetPositiveWeight sets the weight of positive (+1) class observations.
// Type: numeric, default 1.
func (e *SVMEstimator) SetPositiveWeight(v any) error { return e.setFloat("positive_weight", v) }

// PositiveWeight returns the staged positive class weight.
func (e *SVMEstimator) PositiveWeight() (float64, bool) { return e.getFloat("positive_weight") }

// SetNegativeWeight sets the weight of negative (-1) class observations.
// Type: numeric, default 1.
func (e *SVMEstimator) SetNegativeWeight(v any) error { return e.setFloat("negative_weight", v) }

// NegativeWeight returns the staged negative class weight.
func (e *SVMEstimator) NegativeWeight() (float64, bool) { return e.getFloat("negative_weight") }

// SetDisableTrainingMetrics disables calculating training metrics (expensive
// on large datasets). Type: bool, default true.
func (e *SVMEstimator) SetDisableTrainingMetrics(v any) error {
	return e.setBool("disable_training_metrics", v)
}

// DisableTrainingMetrics returns the staged disable_training_metrics flag.
func (e *SVMEstimator) DisableTrainingMetrics() (bool, bool) {
	return e.getBool("disable_training_metrics")
}

// SetSVThreshold sets the threshold for accepting a candidate observation
// into the set of support vectors. Type: numeric, default 1e-4.
func (e *SVMEstimator) SetSVThreshold(v any) error { return e.setFloat("sv_threshold", v) }

// SVThreshold returns the staged support vector threshold.
func (e *SVMEstimator) SVThreshold() (float64, bool) { return e.getFloat("sv_threshold") }

// SetFactThreshold sets the convergence threshold of the Incomplete Cholesky
// Factorization. Type: numeric, default 1e-5.
func (e *SVMEstimator) SetFactThreshold(v any) error { return e.setFloat("fact_threshold", v) }

// FactThreshold returns the staged factorization threshold.
func (e *SVMEstimator) FactThreshold() (float64, bool) { return e.getFloat("fact_threshold") }

// SetFeasibleThreshold sets the convergence threshold for primal-dual
// residuals in the IPM iteration. Type: numeric, default 1e-3.
func (e *SVMEstimator) SetFeasibleThreshold(v any) error { return e.setFloat("feasible_threshold", v) }

// FeasibleThreshold returns the staged feasibility threshold.
func (e *SVMEstimator) FeasibleThreshold() (float64, bool) { return e.getFloat("feasible_threshold") }

// SetSurrogateGapThreshold sets the feasibility criterion of the surrogate
// duality gap (eta). Type: numeric, default 1e-3.
func (e *SVMEstimator) SetSurrogateGapThreshold(v any) error {
	return e.setFloat("surrogate_gap_threshold", v)
}

// SurrogateGapThreshold returns the staged surrogate gap threshold.
func (e *SVMEstimator) SurrogateGapThreshold() (float64, bool) {
	return e.getFloat("surrogate_gap_threshold")
}

// SetMuFactor sets the increasing factor mu. Type: numeric, default 10.
func (e *SVMEstimator) SetMuFactor(v any) error { return e.setFloat("mu_factor", v) }

// MuFactor returns the staged mu factor.
func (e *SVMEstimator) MuFactor() (float64, bool) { return e.getFloat("mu_factor") }

// SetMaxIterations sets the maximum number of iterations of the algorithm.
// Type: integer, default 200.
func (e *SVMEstimator) SetMaxIterations(v any) error { return e.setInt("max_iterations", v) }

// MaxIterations returns the staged iteration cap.
func (e *SVMEstimator) MaxIterations() (int, bool) {
	v, ok := e.getInt("max_iterations")
	return int(v), ok
}

// SetSeed sets the seed for the pseudo random number generator. Type:
// integer, default -1.
func (e *SVMEstimator) SetSeed(v any) error { return e.setInt("seed", v) }

// Seed returns the staged random seed.
func (e *SVMEstimator) Seed() (int64, bool) { return e.getInt("seed") }

// typed getter helpers over the untyped map.

func (e *SVMEstimator) getFloat(name string) (float64, bool) {
	v, ok := e.Get(name)
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

func (e *SVMEstimator) getInt(name string) (int64, bool) {
	v, ok := e.Get(name)
	if !ok {
		return 0, false
	}
	return v.(int64), true
}

func (e *SVMEstimator) getBool(name string) (bool, bool) {
	v, ok := e.Get(name)
	if !ok {
		return false, false
	}
	return v.(bool), true
}

func (e *SVMEstimator) getString(name string) (string, bool) {
	v, ok := e.Get(name)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (e *SVMEstimator) getFrame(name string) (*frame.Frame, bool) {
	v, ok := e.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*frame.Frame), true
}

// Algo returns the engine-side algorithm name.
func (e *SVMEstimator) Algo() string { return SVMAlgo }

// Fit submits the staged parameter map to the engine's PSVM builder and
// records the resulting model handle. All training happens remotely; this
// call performs one submission and returns.
func (e *SVMEstimator) Fit(ctx context.Context, c *engine.Client) (engine.Model, error) {
	model, err := c.Submit(ctx, SVMAlgo, e.Params())
	if err != nil {
		return engine.Model{}, err
	}
	e.model = model
	e.setFitted()
	return model, nil
}

// Model returns the handle recorded by Fit.
func (e *SVMEstimator) Model() (engine.Model, error) {
	if !e.IsFitted() {
		return engine.Model{}, errors.NewNotFittedError("SVMEstimator", "Model")
	}
	return e.model, nil
}
