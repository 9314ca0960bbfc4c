// Package frame provides the tabular abstractions of the Nereid client: Frame
// is a lazy handle to a table living on the remote engine, Table is a local
// column-oriented materialization of one.
package frame

import (
	"encoding/json"
	"fmt"

	"github.com/nereid-ml/nereid/pkg/errors"
)

// Frame is a reference to a data table on the remote engine. The data itself
// never lives in this object; only the engine-side key and, when known, the
// column names are cached client-side.
type Frame struct {
	key  string
	cols []string
}

// New creates a Frame handle for the given engine-side key and column names.
// Columns may be empty when not yet known.
func New(key string, cols ...string) *Frame {
	return &Frame{key: key, cols: append([]string(nil), cols...)}
}

// Key returns the engine-side key of the frame.
func (f *Frame) Key() string { return f.key }

// Columns returns the cached column names, if any.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.cols...)
}

func (f *Frame) String() string {
	return fmt.Sprintf("Frame(%s)", f.key)
}

// MarshalJSON serializes the frame as its engine-side key, which is how frame
// references travel in request parameter maps.
func (f *Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.key)
}

// Validate checks that v is a well-formed frame reference and returns it.
// Both Frame and *Frame values are accepted. Anything else fails with a
// ValueError naming the field the value was supplied for.
func Validate(v any, field string) (*Frame, error) {
	switch fr := v.(type) {
	case *Frame:
		if fr == nil || fr.key == "" {
			return nil, errors.NewValueError(field, "frame reference has no key")
		}
		return fr, nil
	case Frame:
		if fr.key == "" {
			return nil, errors.NewValueError(field, "frame reference has no key")
		}
		return &fr, nil
	default:
		return nil, errors.NewValueError(field, fmt.Sprintf("expected a Frame, got %T", v))
	}
}
