package asm

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// x86-64 operation tree and AT&T printer
//
// The tree is built by a later lowering stage; this package only renders
// it.  Printing is purely structural: no operand validation is done.
// ---------------------------------------------------------------------------

// DefaultScale is the element size used by a ScaledIndexed operand whose
// Scale is left at zero.
const DefaultScale = 8

// ---------------------------------------------------------------------------
// Operands
// ---------------------------------------------------------------------------

// Operand is implemented by every addressing mode.
type Operand interface {
	operand()
}

// Register: %name
type Register struct {
	Name string
}

// RegisterValue is the memory a register points at: (%name)
type RegisterValue struct {
	Name string
}

// ScaledIndexed addresses base + index*scale: (%base, %index, scale)
type ScaledIndexed struct {
	Base  string
	Index string
	Scale int
}

// Integer is an immediate: $n
type Integer struct {
	Value string
}

// String is the address of a declared string constant: $_str_<label>
type String struct {
	Label string
}

func (Register) operand()      {}
func (RegisterValue) operand() {}
func (ScaledIndexed) operand() {}
func (Integer) operand()       {}
func (String) operand()        {}

// ---------------------------------------------------------------------------
// Instructions
// ---------------------------------------------------------------------------

// Instr is implemented by every instruction and directive.
type Instr interface {
	instr()
}

type Add struct{ Dst, Src Operand }
type Sub struct{ Dst, Src Operand }

// Mul multiplies %rax by Src; the result is left in %rax.
type Mul struct{ Src Operand }

// Div divides %rdx:%rax by Src; quotient in %rax, remainder in %rdx.
type Div struct{ Src Operand }

type Neg struct{ Dst Operand }
type Mov struct{ Dst, Src Operand }
type Call struct{ Label string }
type Push struct{ Src Operand }
type Pop struct{ Dst Operand }
type Ret struct{}

// Cmp sets the flags from S1 - S2.
type Cmp struct{ S1, S2 Operand }

type Jmp struct{ Label string }
type Jne struct{ Label string }

// Label names a block of instructions, printed indented under "name:".
type Label struct {
	Name string
	Body []Instr
}

// StringDeclare emits a string constant into the data section.
type StringDeclare struct {
	Value string
}

func (Add) instr()           {}
func (Sub) instr()           {}
func (Mul) instr()           {}
func (Div) instr()           {}
func (Neg) instr()           {}
func (Mov) instr()           {}
func (Call) instr()          {}
func (Push) instr()          {}
func (Pop) instr()           {}
func (Ret) instr()           {}
func (Cmp) instr()           {}
func (Jmp) instr()           {}
func (Jne) instr()           {}
func (Label) instr()         {}
func (StringDeclare) instr() {}

// ---------------------------------------------------------------------------
// Printer
// ---------------------------------------------------------------------------

// Print renders a program, one instruction per line.
func Print(instrs []Instr) string {
	var b strings.Builder
	printInstrs(&b, instrs, 0)
	return b.String()
}

func printInstrs(b *strings.Builder, instrs []Instr, level int) {
	indent := strings.Repeat("\t", level)
	for _, in := range instrs {
		if lbl, ok := in.(Label); ok {
			fmt.Fprintf(b, "%s%s:\n", indent, lbl.Name)
			printInstrs(b, lbl.Body, level+1)
			continue
		}
		b.WriteString(indent)
		b.WriteString(PrintInstr(in))
		b.WriteString("\n")
	}
}

// PrintOperand renders a single operand.
func PrintOperand(op Operand) string {
	switch op := op.(type) {
	case Register:
		return "%" + op.Name
	case RegisterValue:
		return "(%" + op.Name + ")"
	case ScaledIndexed:
		scale := op.Scale
		if scale == 0 {
			scale = DefaultScale
		}
		return fmt.Sprintf("(%%%s, %%%s, %d)", op.Base, op.Index, scale)
	case Integer:
		return "$" + op.Value
	case String:
		return "$_str_" + op.Label
	default:
		return "<?>"
	}
}

// PrintInstr renders a single instruction. A Label renders as its
// header only; use Print for the body.
func PrintInstr(in Instr) string {
	switch in := in.(type) {
	case Add:
		return fmt.Sprintf("addq %s, %s", PrintOperand(in.Src), PrintOperand(in.Dst))
	case Sub:
		return fmt.Sprintf("subq %s, %s", PrintOperand(in.Src), PrintOperand(in.Dst))
	case Mul:
		return "mulq " + PrintOperand(in.Src)
	case Div:
		return "divq " + PrintOperand(in.Src)
	case Neg:
		return "negq " + PrintOperand(in.Dst)
	case Mov:
		return fmt.Sprintf("movq %s, %s", PrintOperand(in.Src), PrintOperand(in.Dst))
	case Call:
		return "call " + in.Label
	case Push:
		return "push " + PrintOperand(in.Src)
	case Pop:
		return "pop " + PrintOperand(in.Dst)
	case Ret:
		return "ret"
	case Cmp:
		return fmt.Sprintf("cmp %s, %s", PrintOperand(in.S2), PrintOperand(in.S1))
	case Jmp:
		return "jmp " + in.Label
	case Jne:
		return "jne " + in.Label
	case Label:
		return in.Name + ":"
	case StringDeclare:
		return fmt.Sprintf(".string %q", in.Value)
	default:
		return "<?>"
	}
}
