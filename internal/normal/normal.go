package normal

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Normal form — the flat, storage-addressed IR produced by the normalizer.
//
// Every instruction writes at most one address and carries at most one
// operator.  Operands of operators are always addresses; literals only
// appear as the source of an Assign.
// ---------------------------------------------------------------------------

// ---------------------------------------------------------------------------
// Addresses
// ---------------------------------------------------------------------------

// MemKind is the storage class of an address.
type MemKind int

const (
	VarMem    MemKind = iota // named variable storage
	ParamMem                 // positional call parameter slot
	TempMem                  // scratch slot for sub-expression results
	ReturnMem                // call result slot (reserved, never produced)
)

var memKindNames = map[MemKind]string{
	VarMem: "var", ParamMem: "param", TempMem: "tmp", ReturnMem: "ret",
}

func (k MemKind) String() string {
	if s, ok := memKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("mem_%d", int(k))
}

// Address is a slot in one of the four storage classes.
type Address struct {
	Kind  MemKind
	Index int
}

func (a Address) String() string {
	return fmt.Sprintf("%s[%d]", a.Kind, a.Index)
}

// Convenience constructors for addresses.
func VarMemory(i int) Address    { return Address{VarMem, i} }
func ParamMemory(i int) Address  { return Address{ParamMem, i} }
func TempMemory(i int) Address   { return Address{TempMem, i} }
func ReturnMemory(i int) Address { return Address{ReturnMem, i} }

// ---------------------------------------------------------------------------
// Values and instructions
// ---------------------------------------------------------------------------

// Value is anything that can be the source of an Assign.
type Value interface {
	fmt.Stringer
	normalValue()
}

// Instr is a top-level instruction in a Normal form list.
type Instr interface {
	fmt.Stringer
	normalInstr()
}

// String is a string literal.
type String struct {
	Value string
}

// Integer is an integer literal kept as its decimal text. Booleans are
// lowered to Integer "1" or "0".
type Integer struct {
	Value string
}

// BinaryOp computes Left <Op> Right.
type BinaryOp struct {
	Op    string
	Left  Address
	Right Address
}

// UnaryOp computes <Op>Operand.
type UnaryOp struct {
	Op      string
	Operand Address
}

// Call invokes Name with arguments already placed in Args. It is a Value
// when its result is assigned and an Instr when used as a statement.
type Call struct {
	Name string
	Args []Address
}

// Assign writes Source to Dest.
type Assign struct {
	Dest   Address
	Source Value
}

// FunctionDef is a function with its lowered body. Params are the ParamMemory
// slots the caller fills before the call.
type FunctionDef struct {
	Name   string
	Params []Address
	Body   []Instr
}

func (Address) normalValue()  {}
func (String) normalValue()   {}
func (Integer) normalValue()  {}
func (BinaryOp) normalValue() {}
func (UnaryOp) normalValue()  {}
func (Call) normalValue()     {}

func (Assign) normalInstr()      {}
func (Call) normalInstr()        {}
func (FunctionDef) normalInstr() {}

func (s String) String() string  { return fmt.Sprintf("%q", s.Value) }
func (i Integer) String() string { return i.Value }

func (b BinaryOp) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Op, b.Right)
}

func (u UnaryOp) String() string {
	return fmt.Sprintf("%s%s", u.Op, u.Operand)
}

func (c Call) String() string {
	return fmt.Sprintf("call %s(%s)", c.Name, joinAddresses(c.Args))
}

func (a Assign) String() string {
	return fmt.Sprintf("%s = %s", a.Dest, a.Source)
}

func (f FunctionDef) String() string {
	return fmt.Sprintf("func %s(%s) [%d instrs]", f.Name, joinAddresses(f.Params), len(f.Body))
}

func joinAddresses(addrs []Address) string {
	parts := make([]string, len(addrs))
	for i, a := range addrs {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

// ---------------------------------------------------------------------------
// Dump
// ---------------------------------------------------------------------------

// DebugDump returns a human-readable listing of an instruction list, one
// instruction per line, with function bodies indented under their header.
func DebugDump(instrs []Instr) string {
	var b strings.Builder
	dumpInstrs(&b, instrs, 0)
	return b.String()
}

func dumpInstrs(b *strings.Builder, instrs []Instr, level int) {
	for _, instr := range instrs {
		b.WriteString(strings.Repeat("  ", level))
		if fn, ok := instr.(FunctionDef); ok {
			fmt.Fprintf(b, "func %s(%s):\n", fn.Name, joinAddresses(fn.Params))
			dumpInstrs(b, fn.Body, level+1)
			continue
		}
		b.WriteString(instr.String())
		b.WriteString("\n")
	}
}
