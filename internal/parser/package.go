package parser

import (
	"ember/internal/ast"
	"ember/token"
)

// Tokenize scans source into its block-wrapped token sequence.
func Tokenize(source string) ([]token.Token, error) {
	return NewScanner(source).ScanTokens()
}

// ParseSource scans and parses source as one block. Lexical errors are
// returned before parsing starts; the error is always an
// *errors.Diagnostics.
func ParseSource(source string, opts ...Option) (*ast.Block, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}

	return NewParser(source, tokens, opts...).ParseProgram()
}
