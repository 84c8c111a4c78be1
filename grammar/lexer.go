package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var EmberLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Keywords (before identifiers)
	{Name: "Keyword", Pattern: `\b(let|fn|return|for|while|if|else|null|print|true|false)\b`},

	// Literals (floats before integers)
	{Name: "Float", Pattern: `[0-9]+\.[0-9]*|\.[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"|'(\\.|[^'\\])*'`},

	{Name: "Ident", Pattern: `[\p{L}_][\p{L}0-9_]*`},

	// Operators
	{Name: "Operator", Pattern: `==|!=|<=|>=|[-+*/%=<>!]`},

	// Punctuation (must come after operators)
	{Name: "Punct", Pattern: `[(){}\[\],;:.]`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
