package frame

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/nereid-ml/nereid/pkg/errors"
)

// Column is a single named column of a materialized table. Exactly one of
// Strings or Nums is set, marking the column as string- or numeric-typed.
type Column struct {
	Name    string
	Strings []string
	Nums    []float64
}

// IsString reports whether the column holds string values.
func (c *Column) IsString() bool { return c.Strings != nil }

func (c *Column) length() int {
	if c.IsString() {
		return len(c.Strings)
	}
	return len(c.Nums)
}

// Table is a local, column-oriented materialization of a remote frame.
// Column order is preserved exactly as produced by the engine.
type Table struct {
	cols []Column
}

// NewTable builds a Table from columns. All columns must have the same
// length; a column with both or neither value slice set is rejected.
func NewTable(cols []Column) (*Table, error) {
	for _, c := range cols {
		if (c.Strings != nil) == (c.Nums != nil) {
			return nil, errors.NewValueError("NewTable", fmt.Sprintf("column %q must hold exactly one of string or numeric data", c.Name))
		}
		if c.length() != cols[0].length() {
			return nil, errors.NewValueError("NewTable", fmt.Sprintf("column %q has %d rows, expected %d", c.Name, c.length(), cols[0].length()))
		}
	}
	return &Table{cols: append([]Column(nil), cols...)}, nil
}

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].length()
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.cols {
		if t.cols[i].Name == name {
			return &t.cols[i], true
		}
	}
	return nil, false
}

// Float returns the numeric value at (row, col). String columns and
// out-of-range coordinates fail with a ValueError.
func (t *Table) Float(row int, col string) (float64, error) {
	c, ok := t.Column(col)
	if !ok {
		return 0, errors.NewValueError("Float", fmt.Sprintf("no column %q", col))
	}
	if c.IsString() {
		return 0, errors.NewValueError("Float", fmt.Sprintf("column %q holds strings", col))
	}
	if row < 0 || row >= len(c.Nums) {
		return 0, errors.NewValueError("Float", fmt.Sprintf("row %d out of range for column %q (%d rows)", row, col, len(c.Nums)))
	}
	return c.Nums[row], nil
}

// String returns the string value at (row, col).
func (t *Table) String(row int, col string) (string, error) {
	c, ok := t.Column(col)
	if !ok {
		return "", errors.NewValueError("String", fmt.Sprintf("no column %q", col))
	}
	if !c.IsString() {
		return "", errors.NewValueError("String", fmt.Sprintf("column %q holds numbers", col))
	}
	if row < 0 || row >= len(c.Strings) {
		return "", errors.NewValueError("String", fmt.Sprintf("row %d out of range for column %q (%d rows)", row, col, len(c.Strings)))
	}
	return c.Strings[row], nil
}

// Matrix converts the numeric columns of the table, in table order, into a
// dense gonum matrix of shape rows x numeric-columns. String columns are
// skipped. A table with no numeric columns fails with a ValueError.
func (t *Table) Matrix() (*mat.Dense, error) {
	var numeric []*Column
	for i := range t.cols {
		if !t.cols[i].IsString() {
			numeric = append(numeric, &t.cols[i])
		}
	}
	if len(numeric) == 0 {
		return nil, errors.NewValueError("Matrix", "table has no numeric columns")
	}
	rows := numeric[0].length()
	m := mat.NewDense(rows, len(numeric), nil)
	for j, c := range numeric {
		for i := 0; i < rows; i++ {
			m.Set(i, j, c.Nums[i])
		}
	}
	return m, nil
}
