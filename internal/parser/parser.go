package parser

import (
	"ember/internal/ast"
	"ember/internal/errors"
	"ember/token"
)

// DefaultMaxDepth bounds how deeply parse calls may nest before the parser
// gives up with a diagnostic.
const DefaultMaxDepth = 1000

// Parser builds an expression tree from a token sequence with a single
// token of lookahead. It stops at the first syntax error.
type Parser struct {
	source   string
	tokens   []token.Token
	current  int
	depth    int
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets the nesting limit. Zero or less disables the limit.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// NewParser creates a parser over tokens scanned from source. The source is
// only used to render diagnostics.
func NewParser(source string, tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{
		source:   source,
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads one expression. It returns (nil, nil) when the tokens are
// exhausted before an expression starts; any error is an
// *errors.Diagnostics with a single entry.
func (p *Parser) Parse() (ast.Expr, error) {
	return p.parseWithMinBindingPower(0)
}

// ParseProgram parses the whole token sequence as the top-level block.
// Tokens left over after that block closed mean the source had a '}'
// without a matching '{'.
func (p *Parser) ParseProgram() (*ast.Block, error) {
	expr, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, p.errorAt(p.tokens[p.current-1], errors.ErrorUnmatchedBrace, errors.MsgUnmatchedBrace)
	}

	switch e := expr.(type) {
	case *ast.Block:
		return e, nil
	case nil:
		return &ast.Block{}, nil
	default:
		return &ast.Block{Pos: e.NodePos(), Exprs: []ast.Expr{e}}, nil
	}
}
