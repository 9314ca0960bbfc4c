// Package estimators provides validated hyperparameter containers for
// training jobs on the Nereid engine.
//
// An estimator is a flat, order-independent map from recognized parameter
// names to validated values. Validation is eager: every setter checks its
// value at assignment time, so a bad value fails immediately with a
// field-localized error instead of surfacing at submission. An unset field
// means "use the engine-side default".
package estimators

// Param is a single name/value pair supplied at construction. Construction
// takes an explicit ordered list so that pairs are validated and applied one
// at a time, in the order given.
type Param struct {
	Name  string
	Value any
}

// base carries the parameter map and lifecycle state shared by all
// estimators.
type base struct {
	id     string
	parms  map[string]any
	fitted bool
}

func newBase() base {
	return base{parms: make(map[string]any)}
}

// Get returns the currently staged value for a parameter name. ok is false
// when the parameter was never set (or was unset).
func (b *base) Get(name string) (any, bool) {
	v, ok := b.parms[name]
	return v, ok
}

func (b *base) store(name string, v any) {
	b.parms[name] = v
}

func (b *base) unset(name string) {
	delete(b.parms, name)
}

// Params returns a copy of the staged parameter map, in the flat shape the
// engine's model builder consumes.
func (b *base) Params() map[string]any {
	out := make(map[string]any, len(b.parms))
	for k, v := range b.parms {
		out[k] = v
	}
	return out
}

// ModelID returns the caller-assigned identity of the training job, if any.
func (b *base) ModelID() string { return b.id }

// IsFitted reports whether the estimator has been submitted for training.
func (b *base) IsFitted() bool { return b.fitted }

func (b *base) setFitted() { b.fitted = true }

// numericValue widens any Go numeric value to float64. Booleans and strings
// are not numeric.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// integerValue narrows any Go integer value to int64. Floats are rejected so
// that integer fields cannot silently truncate.
func integerValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}

// stringSliceValue accepts a []string value.
func stringSliceValue(v any) ([]string, bool) {
	s, ok := v.([]string)
	return s, ok
}
