package parser

import (
	"ember/internal/ast"
	"ember/internal/errors"
)

// parseWithMinBindingPower parses a prefix expression, then keeps folding
// infix operators into it while the next operator binds tighter than
// minBP. Binary handlers recurse with their own binding power, so an
// operator of equal power is left for this loop and chains associate to
// the left.
func (p *Parser) parseWithMinBindingPower(minBP int) (ast.Expr, error) {
	if p.isAtEnd() {
		return nil, nil
	}

	tok := p.advance()

	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return nil, p.errorAt(tok, errors.ErrorNestingTooDeep, errors.MsgNestingTooDeep)
	}
	p.depth++
	defer func() { p.depth-- }()

	left, err := p.parsePrefix(tok)
	if err != nil {
		return nil, err
	}

	for minBP < p.nextBindingPower() {
		left, err = p.parseInfix(left, p.advance())
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}
