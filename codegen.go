package main

import (
	"bytes"
	"fmt"
	"io"
)

// Generator states. A cursor walks the token slice and each token moves
// the machine to the next state or to stateFailed. stateOperator expects
// '+', '-' or the end of input; stateOperandAfterOp expects a number.
type genState int

const (
	stateStart genState = iota
	stateOperator
	stateOperandAfterOp
	stateEnd
	stateFailed
)

// RiscV emits RV32 assembly for a single `main` function. The frame
// layout is fixed; only the immediates change.
type RiscV struct {
	buf bytes.Buffer
}

func (a *RiscV) emitf(format string, args ...any) {
	fmt.Fprintf(&a.buf, format, args...)
}

func (a *RiscV) prologue(fname string) {
	a.emitf("%s:\n", fname)
	a.emitf("  addi sp, sp, -16\n")
	a.emitf("  sw s0, 12(sp)\n")
	a.emitf("  addi s0, sp, 16\n")
}

func (a *RiscV) epilogue() {
	a.emitf("  mv a0, a5\n")
	a.emitf("  lw s0, 12(sp)\n")
	a.emitf("  addi sp, sp, 16\n")
	a.emitf("  jr ra\n")
}

func (a *RiscV) loadImm(n int) {
	a.emitf("  li a5, %d\n", n)
}

func (a *RiscV) addImm(n int) {
	a.emitf("  addi a5, a5, %d\n", n)
}

// Emit assembly computing the expression in toks to w. Nothing is written
// unless toks is a well-formed formula.
func codegen(w io.Writer, toks []Token) error {
	a := &RiscV{}
	a.prologue("main")

	state := stateStart
	var op Token
	var err error

	for i := 0; state != stateEnd && state != stateFailed; i++ {
		end := i >= len(toks)
		var tok Token
		if !end {
			tok = toks[i]
		}

		switch state {
		case stateStart:
			// The first token must be a number
			if end || tok.kind != TK_NUM {
				state, err = stateFailed, formatErrorAt(toks, i, "first token must be a number")
				break
			}
			a.loadImm(tok.val)
			state = stateOperator

		case stateOperator:
			// ... followed by either `+ <number>` or `- <number>`.
			if end {
				state = stateEnd
				break
			}
			if !tok.isOperator() {
				state, err = stateFailed, formatErrorAt(toks, i, "expected '+' or '-'")
				break
			}
			op = tok
			state = stateOperandAfterOp

		case stateOperandAfterOp:
			if end || tok.kind != TK_NUM {
				state, err = stateFailed, formatErrorAt(toks, i, "not a well-formed formula")
				break
			}
			if op.kind == TK_PLUS {
				a.addImm(tok.val)
			} else {
				a.addImm(-tok.val)
			}
			state = stateOperator
		}
	}

	if state == stateFailed {
		return err
	}

	a.epilogue()
	_, err = a.buf.WriteTo(w)
	return err
}

// Locate a format error at toks[i], or just past the last token when the
// input ran out.
func formatErrorAt(toks []Token, i int, msg string) *FormatError {
	loc := 0
	if i < len(toks) {
		loc = toks[i].loc
	} else if len(toks) > 0 {
		last := toks[len(toks)-1]
		loc = last.loc + last.len
	}
	return &FormatError{Loc: loc, Msg: msg}
}
