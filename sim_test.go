package main

import (
	"strings"
	"testing"
)

func TestSimulate(t *testing.T) {
	asm := strings.Join([]string{
		"main:",
		"  addi sp, sp, -16",
		"  sw s0, 12(sp)",
		"  addi s0, sp, 16",
		"  li a5, 7",
		"  addi a5, a5, -10",
		"  mv a0, a5",
		"  lw s0, 12(sp)",
		"  addi sp, sp, 16",
		"  jr ra",
	}, "\n")

	got, err := simulate(asm)
	if err != nil {
		t.Fatal(err)
	}
	if got != -3 {
		t.Errorf("got %d, want -3", got)
	}
}

func TestMachineFrame(t *testing.T) {
	m := NewMachine()
	m.Regs["s0"] = 99
	for _, line := range []string{
		"addi sp, sp, -16",
		"sw s0, 12(sp)",
		"addi s0, sp, 16",
		"lw s0, 12(sp)",
		"addi sp, sp, 16",
	} {
		if err := m.Step(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	if m.Regs["s0"] != 99 {
		t.Errorf("s0 not restored: %d", m.Regs["s0"])
	}
	if m.Regs["sp"] != simStackTop {
		t.Errorf("sp not restored: %#x", m.Regs["sp"])
	}
	if m.Memory[simStackTop-4] != 99 {
		t.Errorf("saved s0 at %#x = %d", simStackTop-4, m.Memory[simStackTop-4])
	}
}

func TestMachineZeroRegister(t *testing.T) {
	m := NewMachine()
	if err := m.Step("li zero, 5"); err != nil {
		t.Fatal(err)
	}
	if m.Regs["zero"] != 0 {
		t.Errorf("zero register was written: %d", m.Regs["zero"])
	}
}

func TestSimulateErrors(t *testing.T) {
	tests := []struct {
		name string
		asm  string
		want string
	}{
		{name: "Unknown instruction", asm: "mul a0, a0, a1", want: "unknown instruction"},
		{name: "Unknown register", asm: "li t9, 1", want: "unknown register"},
		{name: "Bad immediate", asm: "li a0, x", want: "bad immediate"},
		{name: "Arity", asm: "addi a0, a0", want: "expected 3 operands"},
		{name: "Bad memory operand", asm: "lw a0, sp", want: "bad memory operand"},
		{name: "No return", asm: "li a0, 1", want: "did not return"},
		{name: "Indirect jump", asm: "jr a0", want: "only `jr ra`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := simulate(tt.asm)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
