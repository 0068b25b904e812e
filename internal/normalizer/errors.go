package normalizer

import (
	"fmt"

	"snake/internal/ast"
)

// ErrorKind classifies a NormalizeError.
type ErrorKind int

const (
	ErrUninitialized ErrorKind = iota // variable read before any assignment
	ErrInvalidParam                   // non-variable in a function's parameter list
	ErrNotExpression                  // statement found where a value is required
	ErrUnknownNode                    // node matching no known shape
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUninitialized:
		return "uninitialized variable"
	case ErrInvalidParam:
		return "invalid parameter"
	case ErrNotExpression:
		return "not an expression"
	case ErrUnknownNode:
		return "unknown node"
	default:
		return "unknown"
	}
}

// NormalizeError is the fatal error that aborts normalization of a unit.
type NormalizeError struct {
	Kind    ErrorKind
	Message string
	Node    ast.Node
}

func (e *NormalizeError) Error() string {
	return fmt.Sprintf("%s: %s (in %s)", e.Kind, e.Message, ast.NodeString(e.Node))
}

func errorf(kind ErrorKind, node ast.Node, format string, args ...any) error {
	return &NormalizeError{Kind: kind, Message: fmt.Sprintf(format, args...), Node: node}
}
