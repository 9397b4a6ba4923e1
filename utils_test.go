package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestErrorAt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		loc      int
		expected string
	}{
		{
			name:     "Middle",
			input:    "1+a",
			loc:      2,
			expected: "in:1: 1+a\n        ^ boom\n",
		},
		{
			name:     "End of input",
			input:    "1+",
			loc:      2,
			expected: "in:1: 1+\n        ^ boom\n",
		},
		{
			name:     "Second line",
			input:    "1\n2+x",
			loc:      4,
			expected: "in:2: 2+x\n        ^ boom\n",
		},
		{
			name:     "Empty",
			input:    "",
			loc:      0,
			expected: "in:1: \n      ^ boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			errorAt(&buf, "in", tt.input, tt.loc, false, "boom")
			if buf.String() != tt.expected {
				t.Errorf("got\n%q\nwant\n%q", buf.String(), tt.expected)
			}
		})
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, "x.txt", "1+a", &LexError{Loc: 2, Msg: "invalid token"}, false)
	if want := "x.txt:1: 1+a\n           ^ invalid token\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	buf.Reset()
	report(&buf, "x.txt", "", errors.New("disk on fire"), false)
	if want := "x.txt: disk on fire\n"; buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestErrorLocWrapped(t *testing.T) {
	err := errors.Join(errors.New("context"), &FormatError{Loc: 3, Msg: "not a well-formed formula"})
	loc, ok := errorLoc(err)
	if !ok || loc != 3 {
		t.Errorf("errorLoc = %d, %v", loc, ok)
	}
	if msg := errorMsg(err); msg != "not a well-formed formula" {
		t.Errorf("errorMsg = %q", msg)
	}
}

func TestErrorAtColor(t *testing.T) {
	var plain, colored bytes.Buffer
	errorAt(&plain, "in", "1+a", 2, false, "boom")
	errorAt(&colored, "in", "1+a", 2, true, "boom")

	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output has escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[31;1m^") {
		t.Errorf("colored output lacks red caret: %q", colored.String())
	}
	if !strings.Contains(colored.String(), "\x1b[1min:1: ") {
		t.Errorf("colored output lacks bold prefix: %q", colored.String())
	}
	if !strings.Contains(colored.String(), "boom") {
		t.Errorf("colored output lost the message: %q", colored.String())
	}
}
