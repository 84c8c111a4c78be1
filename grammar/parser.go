package grammar

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(EmberLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(3),
)

// Parse parses source with the reference grammar. name is only used in
// error positions.
func Parse(name, source string) (*Program, error) {
	program, err := parser.ParseString(name, source)
	if err != nil {
		return nil, err
	}
	if err := program.validate(); err != nil {
		return nil, err
	}
	return program, nil
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

// EBNF returns the reference grammar in EBNF notation.
func EBNF() string {
	return parser.String()
}

// FormatError renders a parse error with the offending line and a caret
// under the reported column.
func FormatError(src string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return color.RedString("Unexpected error: %s", err) + "\n"
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return color.RedString("Syntax error at unknown location: %s", err) + "\n"
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	var b strings.Builder
	b.WriteString(color.RedString("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column) + "\n")
	b.WriteString(line + "\n")
	b.WriteString(color.HiRedString(caret) + "\n")
	fmt.Fprintf(&b, "→ %s\n", pe.Message())
	return b.String()
}
