package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// LexError reports a byte the tokenizer cannot accept.
type LexError struct {
	Loc int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d: %s", e.Loc, e.Msg)
}

// FormatError reports a token sequence that is not
// Number ((Plus|Minus) Number)*.
type FormatError struct {
	Loc int
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error at %d: %s", e.Loc, e.Msg)
}

// Returns the location of err if it points into the source.
func errorLoc(err error) (int, bool) {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Loc, true
	}
	var fmtErr *FormatError
	if errors.As(err, &fmtErr) {
		return fmtErr.Loc, true
	}
	return 0, false
}

func errorMsg(err error) string {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Msg
	}
	var fmtErr *FormatError
	if errors.As(err, &fmtErr) {
		return fmtErr.Msg
	}
	return err.Error()
}

// Reports an error message in the following format.
// foo.txt:1: 1+a
// ^ <error message here>
func errorAt(w io.Writer, filename, input string, loc int, withColor bool, format string, args ...any) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed, color.Bold)
	if withColor {
		bold.EnableColor()
		red.EnableColor()
	} else {
		bold.DisableColor()
		red.DisableColor()
	}

	loc = min(max(loc, 0), len(input))

	// Find a line containing `loc`.
	line := loc
	for 0 < line && input[line-1] != '\n' {
		line--
	}

	end := loc
	for end < len(input) && input[end] != '\n' {
		end++
	}

	// Get a line number.
	lineno := 1 + strings.Count(input[:line], "\n")

	// Print out the line.
	prefix := fmt.Sprintf("%s:%d: ", filename, lineno)
	fmt.Fprintf(w, "%s%s\n", bold.Sprint(prefix), input[line:end])

	// Show the error message.
	pos := loc - line + len(prefix)

	fmt.Fprintf(w, "%*s", pos, "") // print pos spaces
	fmt.Fprintf(w, "%s %s\n", red.Sprint("^"), fmt.Sprintf(format, args...))
}

// Writes err to w, pointing into input when the error has a location.
func report(w io.Writer, filename, input string, err error, withColor bool) {
	if loc, ok := errorLoc(err); ok {
		errorAt(w, filename, input, loc, withColor, "%s", errorMsg(err))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", filename, err)
}
