package asm

import "testing"

func TestOperands(t *testing.T) {
	cases := []struct {
		op   Operand
		want string
	}{
		{Register{Name: "rax"}, "%rax"},
		{RegisterValue{Name: "rbp"}, "(%rbp)"},
		{ScaledIndexed{Base: "rbp", Index: "rcx", Scale: 4}, "(%rbp, %rcx, 4)"},
		{ScaledIndexed{Base: "rbp", Index: "rcx"}, "(%rbp, %rcx, 8)"},
		{Integer{Value: "42"}, "$42"},
		{String{Label: "0"}, "$_str_0"},
	}
	for _, c := range cases {
		if got := PrintOperand(c.op); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestInstructions(t *testing.T) {
	rax, rbx := Register{Name: "rax"}, Register{Name: "rbx"}
	cases := []struct {
		in   Instr
		want string
	}{
		{Add{Dst: rax, Src: rbx}, "addq %rbx, %rax"},
		{Sub{Dst: rax, Src: Integer{Value: "1"}}, "subq $1, %rax"},
		{Mul{Src: rbx}, "mulq %rbx"},
		{Div{Src: rbx}, "divq %rbx"},
		{Neg{Dst: rax}, "negq %rax"},
		{Mov{Dst: RegisterValue{Name: "rsp"}, Src: String{Label: "hi"}}, "movq $_str_hi, (%rsp)"},
		{Call{Label: "print"}, "call print"},
		{Push{Src: Register{Name: "rbp"}}, "push %rbp"},
		{Pop{Dst: Register{Name: "rbp"}}, "pop %rbp"},
		{Ret{}, "ret"},
		{Cmp{S1: rax, S2: Integer{Value: "0"}}, "cmp $0, %rax"},
		{Jmp{Label: "end"}, "jmp end"},
		{Jne{Label: "loop"}, "jne loop"},
		{StringDeclare{Value: "hello"}, `.string "hello"`},
	}
	for _, c := range cases {
		if got := PrintInstr(c.in); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestPrintLabels(t *testing.T) {
	program := []Instr{
		Label{Name: "_str_hi", Body: []Instr{StringDeclare{Value: "hi"}}},
		Label{Name: "main", Body: []Instr{
			Push{Src: Register{Name: "rbp"}},
			Mov{Dst: Register{Name: "rbp"}, Src: Register{Name: "rsp"}},
			Mov{Dst: ScaledIndexed{Base: "rbp", Index: "rcx"}, Src: Integer{Value: "0"}},
			Pop{Dst: Register{Name: "rbp"}},
			Ret{},
		}},
	}
	want := "_str_hi:\n" +
		"\t.string \"hi\"\n" +
		"main:\n" +
		"\tpush %rbp\n" +
		"\tmovq %rsp, %rbp\n" +
		"\tmovq $0, (%rbp, %rcx, 8)\n" +
		"\tpop %rbp\n" +
		"\tret\n"
	if got := Print(program); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintEmpty(t *testing.T) {
	if got := Print(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
