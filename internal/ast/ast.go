package ast

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Interfaces
// ---------------------------------------------------------------------------

// Node is implemented by every Snake tree node. A program is a []Node whose
// elements are statements (Assign, FunctionDef, Call) or bare expressions.
type Node interface {
	snakeNode()
}

// ---------------------------------------------------------------------------
// Literals
// ---------------------------------------------------------------------------

// String is a string literal without its quotes.
type String struct {
	Value string
}

// Boolean holds the source word, "True" or "False".
type Boolean struct {
	Value string
}

// Integer is an integer literal kept as its source digits.
type Integer struct {
	Value string
}

func (*String) snakeNode()  {}
func (*Boolean) snakeNode() {}
func (*Integer) snakeNode() {}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// Variable is a reference to a named variable.
type Variable struct {
	Name string
}

// Call: <name>(<args>). Valid as an expression and as a statement.
type Call struct {
	Name string
	Args []Node
}

// BinaryOp: <left> <op> <right>
type BinaryOp struct {
	Op    string
	Left  Node
	Right Node
}

// UnaryOp: <op><operand>
type UnaryOp struct {
	Op      string
	Operand Node
}

func (*Variable) snakeNode() {}
func (*Call) snakeNode()     {}
func (*BinaryOp) snakeNode() {}
func (*UnaryOp) snakeNode()  {}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

// FunctionDef: def <name>(<params>): <body>
// Params should all be *Variable; anything else is rejected by the normalizer.
type FunctionDef struct {
	Name   string
	Params []Node
	Body   []Node
}

// Assign: <target> = <value>
type Assign struct {
	Target *Variable
	Value  Node
}

func (*FunctionDef) snakeNode() {}
func (*Assign) snakeNode()      {}

// IsStatement reports whether n may only appear in statement position.
func IsStatement(n Node) bool {
	switch n.(type) {
	case *FunctionDef, *Assign:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Debug printer
// ---------------------------------------------------------------------------

// DebugString returns a readable multi-line representation of a program.
func DebugString(program []Node) string {
	var b strings.Builder
	b.WriteString("Program\n")
	for _, n := range program {
		debugNode(&b, n, 1)
	}
	return b.String()
}

func writeIndent(b *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		b.WriteString("  ")
	}
}

func debugNode(b *strings.Builder, n Node, level int) {
	writeIndent(b, level)
	switch n := n.(type) {
	case *FunctionDef:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = NodeString(p)
		}
		fmt.Fprintf(b, "FunctionDef %s(%s) [%d statements]\n", n.Name, strings.Join(params, ", "), len(n.Body))
		for _, s := range n.Body {
			debugNode(b, s, level+1)
		}
	case *Assign:
		fmt.Fprintf(b, "Assign %s = %s\n", NodeString(n.Target), NodeString(n.Value))
	case *Call:
		fmt.Fprintf(b, "Call %s\n", NodeString(n))
	default:
		fmt.Fprintf(b, "Expr %s\n", NodeString(n))
	}
}

// NodeString returns a concise one-line representation of a node.
func NodeString(n Node) string {
	if n == nil {
		return "<nil>"
	}
	switch n := n.(type) {
	case *String:
		return fmt.Sprintf("%q", n.Value)
	case *Boolean:
		return n.Value
	case *Integer:
		return n.Value
	case *Variable:
		if n == nil {
			return "<nil>"
		}
		return n.Name
	case *Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = NodeString(a)
		}
		return fmt.Sprintf("%s(%s)", n.Name, strings.Join(args, ", "))
	case *BinaryOp:
		return fmt.Sprintf("(%s %s %s)", NodeString(n.Left), n.Op, NodeString(n.Right))
	case *UnaryOp:
		return fmt.Sprintf("(%s%s)", n.Op, NodeString(n.Operand))
	case *FunctionDef:
		return fmt.Sprintf("def %s(…)", n.Name)
	case *Assign:
		return fmt.Sprintf("%s = %s", NodeString(n.Target), NodeString(n.Value))
	default:
		return "<unknown node>"
	}
}
