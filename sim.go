package main

import (
	"fmt"
	"strconv"
	"strings"
)

const simStackTop int32 = 0x10000

// Machine is a tiny RV32 interpreter covering the instructions codegen
// emits. Registers are 32 bits wide and wrap on overflow.
type Machine struct {
	Regs   map[string]int32
	Memory map[int32]int32
	Halted bool
}

// Operand counts of the supported instructions.
var simArity = map[string]int{"li": 2, "addi": 3, "mv": 2, "sw": 2, "lw": 2, "jr": 1, "ret": 0}

var simRegs = []string{"zero", "ra", "sp", "s0", "a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7"}

// NewMachine returns a machine with zeroed registers and sp at the top of
// an empty stack.
func NewMachine() *Machine {
	m := &Machine{
		Regs:   map[string]int32{},
		Memory: map[int32]int32{},
	}
	for _, r := range simRegs {
		m.Regs[r] = 0
	}
	m.Regs["sp"] = simStackTop
	return m
}

func (m *Machine) reg(name string) (int32, error) {
	if name == "fp" {
		name = "s0"
	}
	v, ok := m.Regs[name]
	if !ok {
		return 0, fmt.Errorf("unknown register %q", name)
	}
	return v, nil
}

func (m *Machine) setReg(name string, v int32) error {
	if name == "fp" {
		name = "s0"
	}
	if _, ok := m.Regs[name]; !ok {
		return fmt.Errorf("unknown register %q", name)
	}
	if name != "zero" {
		m.Regs[name] = v
	}
	return nil
}

func parseImm(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad immediate %q", s)
	}
	return int32(n), nil
}

// Resolve an `off(base)` memory operand.
func (m *Machine) addr(operand string) (int32, error) {
	open := strings.IndexByte(operand, '(')
	if open < 0 || !strings.HasSuffix(operand, ")") {
		return 0, fmt.Errorf("bad memory operand %q", operand)
	}
	off, err := parseImm(operand[:open])
	if err != nil {
		return 0, err
	}
	base, err := m.reg(operand[open+1 : len(operand)-1])
	if err != nil {
		return 0, err
	}
	return base + off, nil
}

// Step executes one line of assembly. Labels and blank lines are no-ops, as
// is anything after the machine has halted.
func (m *Machine) Step(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasSuffix(line, ":") || m.Halted {
		return nil
	}

	mnemonic, rest, _ := strings.Cut(line, " ")
	var ops []string
	if rest = strings.TrimSpace(rest); rest != "" {
		for _, op := range strings.Split(rest, ",") {
			ops = append(ops, strings.TrimSpace(op))
		}
	}

	want, ok := simArity[mnemonic]
	if !ok {
		return fmt.Errorf("unknown instruction %q", mnemonic)
	}
	if len(ops) != want {
		return fmt.Errorf("%s: expected %d operands, got %d", mnemonic, want, len(ops))
	}

	switch mnemonic {
	case "li":
		imm, err := parseImm(ops[1])
		if err != nil {
			return err
		}
		return m.setReg(ops[0], imm)

	case "addi":
		src, err := m.reg(ops[1])
		if err != nil {
			return err
		}
		imm, err := parseImm(ops[2])
		if err != nil {
			return err
		}
		return m.setReg(ops[0], src+imm)

	case "mv":
		src, err := m.reg(ops[1])
		if err != nil {
			return err
		}
		return m.setReg(ops[0], src)

	case "sw":
		src, err := m.reg(ops[0])
		if err != nil {
			return err
		}
		a, err := m.addr(ops[1])
		if err != nil {
			return err
		}
		m.Memory[a] = src
		return nil

	case "lw":
		a, err := m.addr(ops[1])
		if err != nil {
			return err
		}
		return m.setReg(ops[0], m.Memory[a])

	case "jr":
		if ops[0] != "ra" {
			return fmt.Errorf("jr: only `jr ra` is supported")
		}
		m.Halted = true

	case "ret":
		m.Halted = true
	}
	return nil
}

// Replays asm from the top and returns a0 once the function returns.
func simulate(asm string) (int32, error) {
	m := NewMachine()
	for i, line := range strings.Split(asm, "\n") {
		if err := m.Step(line); err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if m.Halted {
			return m.Regs["a0"], nil
		}
	}
	return 0, fmt.Errorf("function did not return")
}
