// Package token SPDX-License-Identifier: Apache-2.0
package token

import "fmt"

// regenerate tokentype_string.go with `go generate ./token`
//
//go:generate stringer -type=TokenType
type TokenType int

const (
	ILLEGAL TokenType = iota

	// Punctuation
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
	COMMA
	SEMICOLON
	COLON
	DOT

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	EQUAL
	EQUAL_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	BANG
	BANG_EQUAL

	// Literals + identifiers
	STRING     // 'abc', "abc"
	INT        // 1234
	FLOAT      // 12.5, .5
	BOOLEAN    // true, false
	IDENTIFIER // x, total_1

	// Keywords
	LET
	FN
	RETURN
	FOR
	WHILE
	IF
	ELSE
	NULL
	PRINT
)

// Span is the half-open byte range [Start, End) of a token in its source.
type Span struct {
	Start int
	End   int
}

// Token is a lexeme of the source together with its kind. Lexeme is a
// substring of the scanned source, never a copy.
type Token struct {
	Type   TokenType
	Lexeme string
	Span   Span

	// Literal holds the decoded value of STRING (string), INT (int64),
	// FLOAT (float64) and BOOLEAN (bool) tokens, and the name of IDENTIFIER
	// tokens. It is nil for every other kind.
	Literal any
}

// Pos returns the byte offset of the first character of the token.
func (t Token) Pos() int { return t.Span.Start }

// BindingPower returns how tightly the token binds as an infix operator.
func (t Token) BindingPower() int { return t.Type.BindingPower() }

func (t Token) String() string {
	return fmt.Sprintf("[%s, %s]", t.Lexeme, t.Type)
}

// BindingPower returns the infix binding power of the token type. Zero means
// the type is not an infix operator.
func (tt TokenType) BindingPower() int {
	switch tt {
	case EQUAL:
		return 1
	case EQUAL_EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL, BANG_EQUAL:
		return 2
	case PLUS, MINUS:
		return 3
	case STAR, SLASH, PERCENT:
		return 4
	case LEFT_PAREN:
		// reserved for call expressions
		return 5
	default:
		return 0
	}
}

// IsLiteral reports whether the token type carries a decoded literal value.
func (tt TokenType) IsLiteral() bool {
	return tt >= STRING && tt <= BOOLEAN
}

// IsKeyword reports whether the token type is a reserved word.
func (tt TokenType) IsKeyword() bool {
	return tt >= LET && tt <= PRINT
}
