package main

import "io"

// Tokenize and generate. Tokens are returned whenever tokenizing
// succeeded, even if generation did not.
func compile(w io.Writer, input string) ([]Token, error) {
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	return toks, codegen(w, toks)
}
