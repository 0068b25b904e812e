package normalizer

import (
	"snake/internal/ast"
	"snake/internal/normal"
)

// ---------------------------------------------------------------------------
// Normalizer — lowers a Snake tree into Normal form
//
// Lowering is destination-passing: an expression is always lowered against
// the address its value must end up in.  Binary and unary operands always go
// through TempMemory(0) and TempMemory(1), so a nested operation overwrites
// the temporaries of the one enclosing it.
// ---------------------------------------------------------------------------

var booleanValues = map[string]string{
	"True":  "1",
	"False": "0",
}

// Normalize lowers a whole program against a fresh environment.
func Normalize(program []ast.Node) ([]normal.Instr, error) {
	return NormalizeAll(program, NewEnvironment())
}

// NormalizeAll lowers a statement list, threading env from each statement to
// the next. The first error aborts the whole list.
func NormalizeAll(nodes []ast.Node, env Environment) ([]normal.Instr, error) {
	var out []normal.Instr
	for _, n := range nodes {
		instrs, next, err := normalizeStatement(n, env)
		if err != nil {
			return nil, err
		}
		out = append(out, instrs...)
		env = next
	}
	return out, nil
}

func normalizeStatement(n ast.Node, env Environment) ([]normal.Instr, Environment, error) {
	switch n := n.(type) {
	case *ast.FunctionDef:
		fn, err := normalizeFunctionDef(n, env)
		if err != nil {
			return nil, env, err
		}
		// The caller's scope is unchanged.
		return []normal.Instr{fn}, env, nil

	case *ast.Assign:
		if n.Target == nil {
			return nil, env, errorf(ErrUnknownNode, n, "assignment without a target variable")
		}
		dest, ok := env.Lookup(n.Target.Name)
		if !ok {
			env, dest = env.Bind(n.Target.Name)
		}
		instrs, err := normalizeExpression(n.Value, env, dest)
		if err != nil {
			return nil, env, err
		}
		return instrs, env, nil

	case *ast.Call:
		call, setup, err := normalizeCall(n, env)
		if err != nil {
			return nil, env, err
		}
		return append(setup, call), env, nil

	case *ast.String, *ast.Boolean, *ast.Integer, *ast.Variable, *ast.BinaryOp, *ast.UnaryOp:
		// Bare expression statements have no effect.
		return nil, env, nil

	default:
		return nil, env, errorf(ErrUnknownNode, n, "found an unknown node where a statement is expected")
	}
}

// normalizeFunctionDef lowers the body in a child scope whose prologue copies
// each ParamMemory slot into a VarMemory slot bound to the parameter name.
func normalizeFunctionDef(fn *ast.FunctionDef, env Environment) (normal.FunctionDef, error) {
	inner := env.Child()
	params := make([]normal.Address, 0, len(fn.Params))
	var prologue []normal.Instr

	for i, p := range fn.Params {
		v, ok := p.(*ast.Variable)
		if !ok || v == nil {
			return normal.FunctionDef{}, errorf(ErrInvalidParam, fn, "parameter %d of %q is %s, not a variable", i, fn.Name, ast.NodeString(p))
		}
		param := normal.ParamMemory(i)
		var slot normal.Address
		inner, slot = inner.Bind(v.Name)
		params = append(params, param)
		prologue = append(prologue, normal.Assign{Dest: slot, Source: param})
	}

	body, err := NormalizeAll(fn.Body, inner)
	if err != nil {
		return normal.FunctionDef{}, err
	}

	return normal.FunctionDef{
		Name:   fn.Name,
		Params: params,
		Body:   append(prologue, body...),
	}, nil
}

// normalizeCall places each argument in its ParamMemory slot and returns the
// call together with the setup instructions.
func normalizeCall(c *ast.Call, env Environment) (normal.Call, []normal.Instr, error) {
	var setup []normal.Instr
	args := make([]normal.Address, 0, len(c.Args))

	for i, arg := range c.Args {
		dest := normal.ParamMemory(i)
		instrs, err := normalizeExpression(arg, env, dest)
		if err != nil {
			return normal.Call{}, nil, err
		}
		setup = append(setup, instrs...)
		args = append(args, dest)
	}

	return normal.Call{Name: c.Name, Args: args}, setup, nil
}

func normalizeExpression(n ast.Node, env Environment, dest normal.Address) ([]normal.Instr, error) {
	switch n := n.(type) {
	case *ast.String:
		return []normal.Instr{normal.Assign{Dest: dest, Source: normal.String{Value: n.Value}}}, nil

	case *ast.Integer:
		return []normal.Instr{normal.Assign{Dest: dest, Source: normal.Integer{Value: n.Value}}}, nil

	case *ast.Boolean:
		value, ok := booleanValues[n.Value]
		if !ok {
			return nil, errorf(ErrUnknownNode, n, "invalid boolean literal %q", n.Value)
		}
		return []normal.Instr{normal.Assign{Dest: dest, Source: normal.Integer{Value: value}}}, nil

	case *ast.Variable:
		src, ok := env.Lookup(n.Name)
		if !ok {
			return nil, errorf(ErrUninitialized, n, "uninitialized variable %q was found", n.Name)
		}
		return []normal.Instr{normal.Assign{Dest: dest, Source: src}}, nil

	case *ast.Call:
		call, setup, err := normalizeCall(n, env)
		if err != nil {
			return nil, err
		}
		return append(setup, normal.Assign{Dest: dest, Source: call}), nil

	case *ast.BinaryOp:
		left, right := normal.TempMemory(0), normal.TempMemory(1)
		leftInstrs, err := normalizeExpression(n.Left, env, left)
		if err != nil {
			return nil, err
		}
		rightInstrs, err := normalizeExpression(n.Right, env, right)
		if err != nil {
			return nil, err
		}
		instrs := append(leftInstrs, rightInstrs...)
		return append(instrs, normal.Assign{Dest: dest, Source: normal.BinaryOp{Op: n.Op, Left: left, Right: right}}), nil

	case *ast.UnaryOp:
		operand := normal.TempMemory(0)
		instrs, err := normalizeExpression(n.Operand, env, operand)
		if err != nil {
			return nil, err
		}
		return append(instrs, normal.Assign{Dest: dest, Source: normal.UnaryOp{Op: n.Op, Operand: operand}}), nil

	case *ast.FunctionDef, *ast.Assign:
		return nil, errorf(ErrNotExpression, n, "found a statement where there can only be expressions")

	default:
		return nil, errorf(ErrUnknownNode, n, "found an unknown node where an expression is expected")
	}
}
