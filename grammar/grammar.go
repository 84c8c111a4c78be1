package grammar

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

// Program is a whole source file: the statements of the implicit
// top-level block.
type Program struct {
	Pos        lexer.Position
	Statements []*Statement `@@*`
}

type Block struct {
	Pos        lexer.Position
	Statements []*Statement `"{" @@* "}"`
}

// Statement is one expression of a block. Only the last statement of a
// block may omit its ';', which validate enforces.
type Statement struct {
	Pos        lexer.Position
	Expr       *Expression `@@`
	Terminated bool        `[ @";" ]`
}

type Expression struct {
	Pos        lexer.Position
	Let        *Assignment `  "let" @@`
	Assignment *Assignment `| @@`
	Comparison *Comparison `| @@`
}

type Assignment struct {
	Pos    lexer.Position
	Target string      `@Ident "="`
	Value  *Comparison `@@`
}

type Comparison struct {
	Left *Additive       `@@`
	Ops  []*ComparisonOp `@@*`
}

type ComparisonOp struct {
	Operator string    `@("==" | "!=" | "<=" | ">=" | "<" | ">")`
	Right    *Additive `@@`
}

type Additive struct {
	Left *Multiplicative `@@`
	Ops  []*AdditiveOp   `@@*`
}

type AdditiveOp struct {
	Operator string          `@("+" | "-")`
	Right    *Multiplicative `@@`
}

type Multiplicative struct {
	Left *Primary            `@@`
	Ops  []*MultiplicativeOp `@@*`
}

type MultiplicativeOp struct {
	Operator string   `@("*" | "/" | "%")`
	Right    *Primary `@@`
}

type Primary struct {
	Pos   lexer.Position
	Float *float64    `  @Float`
	Int   *Integer    `| @Int`
	Str   *string     `| @String`
	Bool  *Boolean    `| @("true" | "false")`
	Ident *string     `| @Ident`
	Group *Expression `| "(" @@ ")"`
	Block *Block      `| @@`
}

// Boolean captures the true and false keywords.
type Boolean bool

func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}

// Integer captures decimal integer literals. Leading zeros do not switch
// the base.
type Integer int64

func (i *Integer) Capture(values []string) error {
	n, err := strconv.ParseInt(values[0], 10, 64)
	if err != nil {
		return err
	}
	*i = Integer(n)
	return nil
}
