package parser

import (
	"fmt"

	"ember/internal/ast"
	"ember/internal/errors"
	"ember/token"
)

var binaryOperators = map[token.TokenType]ast.BinaryOp{
	token.PLUS:          ast.Add,
	token.MINUS:         ast.Sub,
	token.STAR:          ast.Mul,
	token.SLASH:         ast.Div,
	token.PERCENT:       ast.Modulo,
	token.EQUAL_EQUAL:   ast.EqualEqual,
	token.LESS:          ast.Less,
	token.LESS_EQUAL:    ast.LessEqual,
	token.GREATER:       ast.Greater,
	token.GREATER_EQUAL: ast.GreaterEqual,
	token.BANG_EQUAL:    ast.NotEqual,
}

func (p *Parser) parseInfix(left ast.Expr, tok token.Token) (ast.Expr, error) {
	if tok.Type == token.EQUAL {
		return p.parseAssignment(left, tok)
	}

	op, ok := binaryOperators[tok.Type]
	if !ok {
		return nil, p.errorAt(tok, errors.ErrorUnexpectedInfix,
			fmt.Sprintf("Unexpected infix token type `%s`", tok.Type))
	}
	return p.parseBinary(left, tok, op)
}

// parseAssignment requires a variable on the left and a ';' right after the
// assigned value. The ';' is only looked at; the enclosing block consumes
// it.
func (p *Parser) parseAssignment(left ast.Expr, tok token.Token) (ast.Expr, error) {
	if _, ok := left.(*ast.Ident); !ok {
		return nil, p.errorAt(tok, errors.ErrorInvalidAssignment, errors.MsgInvalidAssignment)
	}

	expr, err := p.parseBinary(left, tok, ast.Equal)
	if err != nil {
		return nil, err
	}

	if !p.check(token.SEMICOLON) {
		return nil, p.errorAt(tok, errors.ErrorAssignmentNotTerminated, errors.MsgAssignNotTerminated)
	}
	return expr, nil
}

func (p *Parser) parseBinary(left ast.Expr, tok token.Token, op ast.BinaryOp) (ast.Expr, error) {
	right, err := p.parseWithMinBindingPower(tok.BindingPower())
	if err != nil {
		return nil, err
	}
	if right == nil {
		return nil, p.errorAt(tok, errors.ErrorMissingOperand, errors.MsgMissingOperand)
	}

	return &ast.Binary{Pos: tok.Pos(), Left: left, Op: op, Right: right}, nil
}
