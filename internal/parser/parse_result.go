package parser

import (
	"ember/internal/ast"
	"ember/internal/errors"
	"ember/token"
)

// ParseResult holds everything one pass over a source produced. Tokens is
// nil when scanning failed, Tree is nil when either stage failed.
type ParseResult struct {
	Source      string
	Tokens      []token.Token
	Tree        *ast.Block
	Diagnostics *errors.Diagnostics
}

// Analyze runs the scanner and the parser over source and keeps the
// intermediate tokens, for tools that need more than the tree.
func Analyze(source string, opts ...Option) *ParseResult {
	result := &ParseResult{Source: source}

	tokens, err := Tokenize(source)
	if err != nil {
		result.Diagnostics = asDiagnostics(err)
		return result
	}
	result.Tokens = tokens

	tree, err := NewParser(source, tokens, opts...).ParseProgram()
	if err != nil {
		result.Diagnostics = asDiagnostics(err)
		return result
	}
	result.Tree = tree

	return result
}

// OK reports whether the source parsed without diagnostics.
func (r *ParseResult) OK() bool {
	return r.Diagnostics == nil
}

// LetTargets lists the variables bound by let expressions in the tree.
func (r *ParseResult) LetTargets() []*ast.Ident {
	if r.Tree == nil {
		return nil
	}
	return ast.LetTargets(r.Tree)
}

// asDiagnostics unwraps a scanner or parser error. Both only ever return
// *errors.Diagnostics.
func asDiagnostics(err error) *errors.Diagnostics {
	diags, _ := err.(*errors.Diagnostics)
	return diags
}
