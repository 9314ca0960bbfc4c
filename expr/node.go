// Package expr builds symbolic computation requests for the Nereid engine.
//
// A Node is a pure value: an operation tag plus operands. Building a Node
// performs no I/O; the request only reaches the engine when a Node is handed
// to the engine client for evaluation. Operands may be literals, remote
// handles (anything implementing Ref), or nested nodes.
package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nereid-ml/nereid/pkg/errors"
)

// Ref is implemented by handles to remote objects (frames, models) that
// serialize into an expression as their engine-side key.
type Ref interface {
	Key() string
}

// Node is a single symbolic operation with its operands.
type Node struct {
	op   string
	args []any
}

// NewNode creates a Node for the given operation tag and operands.
func NewNode(op string, args ...any) *Node {
	return &Node{op: op, args: args}
}

// Op returns the operation tag.
func (n *Node) Op() string { return n.op }

// Args returns the operand list as constructed.
func (n *Node) Args() []any { return n.args }

// Rapids serializes the node into the engine's s-expression wire form, e.g.
//
//	(PermutationVarImp model_key frame_key "mse")
//
// Unsupported operand types fail with a ValueError; nothing is submitted.
func (n *Node) Rapids() (string, error) {
	var sb strings.Builder
	if err := writeNode(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeNode(sb *strings.Builder, n *Node) error {
	sb.WriteString("(")
	sb.WriteString(n.op)
	for _, arg := range n.args {
		sb.WriteString(" ")
		if err := writeArg(sb, arg); err != nil {
			return err
		}
	}
	sb.WriteString(")")
	return nil
}

func writeArg(sb *strings.Builder, arg any) error {
	switch v := arg.(type) {
	case *Node:
		return writeNode(sb, v)
	case Ref:
		sb.WriteString(v.Key())
	case string:
		sb.WriteString(strconv.Quote(v))
	case bool:
		if v {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case int:
		sb.WriteString(strconv.Itoa(v))
	case int64:
		sb.WriteString(strconv.FormatInt(v, 10))
	case float64:
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case []string:
		sb.WriteString("[")
		for i, s := range v {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(strconv.Quote(s))
		}
		sb.WriteString("]")
	default:
		return errors.NewValueError("Rapids", fmt.Sprintf("unsupported operand type %T", arg))
	}
	return nil
}
