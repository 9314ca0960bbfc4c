package engine

import "fmt"

// Model is a handle to a model trained on the remote engine. It carries no
// local state beyond identity; all model artifacts live engine-side.
type Model struct {
	key  string
	algo string
}

// NewModel creates a handle for an existing engine-side model.
func NewModel(key, algo string) Model {
	return Model{key: key, algo: algo}
}

// Key returns the engine-side model key.
func (m Model) Key() string { return m.key }

// Algo returns the algorithm name the model was trained with.
func (m Model) Algo() string { return m.algo }

func (m Model) String() string {
	return fmt.Sprintf("Model(%s, algo=%s)", m.key, m.algo)
}
