package main

import (
	"fmt"
	"math"
)

// Token
type TokenKind int

const (
	TK_NUM   TokenKind = iota // Numeric literals
	TK_PLUS                   // '+'
	TK_MINUS                  // '-'
)

// Token type
type Token struct {
	kind   TokenKind // Token kind
	val    int       // If kind is TK_NUM, its value
	loc    int       // Token location
	len    int       // Token length
	lexeme string    // Token lexeme value in string
}

// Create a new token.
func NewToken(kind TokenKind, pos int, len int, lexeme string) Token {
	return Token{
		kind:   kind,
		loc:    pos,
		len:    len,
		lexeme: lexeme,
	}
}

func (tok Token) isOperator() bool {
	return tok.kind == TK_PLUS || tok.kind == TK_MINUS
}

func (tok Token) String() string {
	switch tok.kind {
	case TK_NUM:
		return fmt.Sprintf("Num %d", tok.val)
	case TK_PLUS:
		return "Plus"
	case TK_MINUS:
		return "Minus"
	}
	return fmt.Sprintf("TokenKind(%d)", int(tok.kind))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Tokenize a given string and returns new tokens.
func tokenize(input string) ([]Token, error) {
	toks := []Token{}
	p := 0

	for p < len(input) {
		// Numeric literal
		if isDigit(input[p]) {
			n, np, err := readNumber(input, p)
			if err != nil {
				return nil, err
			}
			tok := NewToken(TK_NUM, p, np-p, input[p:np])
			tok.val = n
			toks = append(toks, tok)
			p = np
			continue
		}

		// Punctuator
		switch input[p] {
		case '+':
			toks = append(toks, NewToken(TK_PLUS, p, 1, "+"))
			p++
			continue
		case '-':
			toks = append(toks, NewToken(TK_MINUS, p, 1, "-"))
			p++
			continue
		}

		return nil, &LexError{Loc: p, Msg: "invalid token"}
	}

	return toks, nil
}

// Read a decimal literal starting at pos. Returns its value and the
// position just past its last digit.
func readNumber(s string, pos int) (int, int, error) {
	start := pos
	val := 0
	for ; pos < len(s) && isDigit(s[pos]); pos++ {
		var ok bool
		if val, ok = appendDigit(val, int(s[pos]-'0')); !ok {
			return 0, 0, &LexError{Loc: start, Msg: "integer literal out of range"}
		}
	}
	return val, pos, nil
}

// Returns val*10 + d, or false if that exceeds math.MaxInt32. The bound is
// checked before multiplying so a 32-bit int never wraps.
func appendDigit(val, d int) (int, bool) {
	if val > (math.MaxInt32-d)/10 {
		return 0, false
	}
	return val*10 + d, true
}
