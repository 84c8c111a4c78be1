package parser

import (
	"ember/internal/errors"
	"ember/token"
)

// advance consumes the next token. Callers check isAtEnd first.
func (p *Parser) advance() token.Token {
	tok := p.tokens[p.current]
	p.current++
	return tok
}

func (p *Parser) peek() (token.Token, bool) {
	if p.isAtEnd() {
		return token.Token{}, false
	}
	return p.tokens[p.current], true
}

// check reports whether the next token has type tt, without consuming it.
func (p *Parser) check(tt token.TokenType) bool {
	tok, ok := p.peek()
	return ok && tok.Type == tt
}

// match consumes the next token if it has type tt.
func (p *Parser) match(tt token.TokenType) bool {
	if p.check(tt) {
		p.current++
		return true
	}
	return false
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens)
}

// nextBindingPower is the infix binding power of the next token, zero at
// the end of input.
func (p *Parser) nextBindingPower() int {
	tok, ok := p.peek()
	if !ok {
		return 0
	}
	return tok.BindingPower()
}

func (p *Parser) errorAt(tok token.Token, code, message string) error {
	return errors.At(p.source, tok.Pos(), code, message)
}
