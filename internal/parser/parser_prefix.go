package parser

import (
	"fmt"

	"ember/internal/ast"
	"ember/internal/errors"
	"ember/token"
)

func (p *Parser) parsePrefix(tok token.Token) (ast.Expr, error) {
	switch tok.Type {
	case token.STRING, token.INT, token.FLOAT, token.BOOLEAN:
		if value, ok := literalValue(tok); ok {
			return &ast.Literal{Pos: tok.Pos(), Value: value}, nil
		}
	case token.IDENTIFIER:
		return &ast.Ident{Pos: tok.Pos(), Name: tok.Lexeme}, nil
	case token.LET:
		return p.parseLet(tok)
	case token.LEFT_PAREN:
		return p.parseGroup(tok)
	case token.LEFT_BRACE:
		return p.parseBlock(tok)
	}

	return nil, p.errorAt(tok, errors.ErrorUnexpectedPrefix,
		fmt.Sprintf("Unexpected prefix token type `%s`", tok.Type))
}

func literalValue(tok token.Token) (ast.Lit, bool) {
	switch v := tok.Literal.(type) {
	case string:
		return ast.Str(v), true
	case int64:
		return ast.Int(v), true
	case float64:
		return ast.Float(v), true
	case bool:
		return ast.Bool(v), true
	default:
		return nil, false
	}
}

// parseLet parses `let <ident> = <expr>`. The bound expression is parsed
// as a whole and must come out as an assignment.
func (p *Parser) parseLet(tok token.Token) (ast.Expr, error) {
	expr, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, p.errorAt(tok, errors.ErrorInvalidLet, errors.MsgLetMissingName)
	}

	binary, ok := expr.(*ast.Binary)
	if !ok {
		return nil, p.errorAt(tok, errors.ErrorInvalidLet, errors.MsgLetInvalid)
	}
	if binary.Op != ast.Equal {
		return nil, p.errorAt(tok, errors.ErrorInvalidLet, errors.MsgLetNotAssigned)
	}

	return &ast.Let{Pos: tok.Pos(), Value: binary}, nil
}

func (p *Parser) parseGroup(tok token.Token) (ast.Expr, error) {
	expr, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, p.errorAt(tok, errors.ErrorMissingParen, errors.MsgGroupMissingExpression)
	}

	if !p.match(token.RIGHT_PAREN) {
		return nil, p.errorAt(tok, errors.ErrorMissingParen, errors.MsgMissingParen)
	}

	return &ast.Group{Pos: tok.Pos(), Value: expr}, nil
}

// parseBlock parses `;`-separated expressions up to the closing '}'. The
// closing brace is checked before every expression, so `{}` and a trailing
// `;` are accepted.
func (p *Parser) parseBlock(tok token.Token) (ast.Expr, error) {
	var exprs []ast.Expr

	for !p.match(token.RIGHT_BRACE) {
		expr, err := p.Parse()
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return nil, p.errorAt(tok, errors.ErrorUnterminatedBlock, errors.MsgUnterminatedBlock)
		}
		exprs = append(exprs, expr)

		if p.match(token.RIGHT_BRACE) {
			break
		}
		next, ok := p.peek()
		if !ok {
			return nil, p.errorAt(tok, errors.ErrorUnterminatedBlock, errors.MsgUnterminatedBlock)
		}
		if !p.match(token.SEMICOLON) {
			return nil, p.errorAt(next, errors.ErrorMissingSemicolon, errors.MsgMissingSemicolon)
		}
	}

	return &ast.Block{Pos: tok.Pos(), Exprs: exprs}, nil
}
