package grammar_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ember/grammar"
	"ember/internal/parser"
)

func init() {
	color.NoColor = true
}

func TestParseStatements(t *testing.T) {
	program, err := grammar.Parse("test.em", "let total = 1 + 2;\ntotal * 3")
	require.NoError(t, err)
	require.Len(t, program.Statements, 2)

	first := program.Statements[0]
	assert.True(t, first.Terminated)
	require.NotNil(t, first.Expr.Let)
	assert.Equal(t, "total", first.Expr.Let.Target)

	second := program.Statements[1]
	assert.False(t, second.Terminated)
	require.NotNil(t, second.Expr.Comparison)
	assert.Equal(t, 2, second.Pos.Line)
}

func TestParseLiterals(t *testing.T) {
	program, err := grammar.Parse("test.em", `1; 2.5; 'x'; true; name`)
	require.NoError(t, err)
	require.Len(t, program.Statements, 5)

	primary := func(i int) *grammar.Primary {
		return program.Statements[i].Expr.Comparison.Left.Left.Left
	}
	require.NotNil(t, primary(0).Int)
	assert.EqualValues(t, 1, *primary(0).Int)
	require.NotNil(t, primary(1).Float)
	assert.Equal(t, 2.5, *primary(1).Float)
	require.NotNil(t, primary(2).Str)
	assert.Equal(t, "'x'", *primary(2).Str)
	require.NotNil(t, primary(3).Bool)
	assert.True(t, bool(*primary(3).Bool))
	require.NotNil(t, primary(4).Ident)
	assert.Equal(t, "name", *primary(4).Ident)
}

func TestParseRejects(t *testing.T) {
	sources := []string{
		"a b",
		"a = 1",
		"let a;",
		"(a = 1);",
		"{ let a = 1 }",
		"a +",
	}

	for _, src := range sources {
		_, err := grammar.Parse("test.em", src)
		assert.Error(t, err, "source: %q", src)
	}
}

// Sources valid in the hand-written parser must parse to the same tree
// here, and invalid ones must be rejected by both.
func TestMatchesParser(t *testing.T) {
	valid := []string{
		"",
		"{}",
		"(x + y) * z - 'name';",
		"let a = 1; let b = a + 2;",
		"a == b < c; d != e >= f",
		"{ let a = 1; a + 2 };",
		"{ { a; }; b };",
		"x = 1.5 * .5 % 7.;",
		"# comment\nflag = true; other = false;",
		"a / b % c - d + e",
		`"quoted \" inside";`,
		"café = 10;",
		"x = a <= b;",
	}

	for _, src := range valid {
		t.Run(src, func(t *testing.T) {
			tree, err := parser.ParseSource(src)
			require.NoError(t, err)

			program, err := grammar.Parse("test.em", src)
			require.NoError(t, err)

			assert.Equal(t, tree.String(), program.String())
		})
	}

	invalid := []string{
		"let a;",
		"let a + 1;",
		"1 = a;",
		"a = 1",
		"a = b = c;",
		"(a;",
		"(a = 1);",
		"a b",
		";",
		"a (b);",
		"a; } b;",
		"x < y = 1;",
		"a +",
	}

	for _, src := range invalid {
		_, perr := parser.ParseSource(src)
		_, gerr := grammar.Parse("test.em", src)
		assert.Error(t, perr, "parser accepted %q", src)
		assert.Error(t, gerr, "grammar accepted %q", src)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.em")
	require.NoError(t, os.WriteFile(path, []byte("let a = 1;\n"), 0o644))

	program, err := grammar.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  let [`a` Equal 1i]\n}", program.String())

	_, err = grammar.ParseFile(filepath.Join(t.TempDir(), "missing.em"))
	assert.Error(t, err)
}

func TestFormatError(t *testing.T) {
	src := "a b"
	_, err := grammar.Parse("test.em", src)
	require.Error(t, err)

	expected := "Syntax error in test.em at line 1, column 3:\n" +
		"a b\n" +
		"  ^\n" +
		"→ statement didn't close with a ';'\n"
	assert.Equal(t, expected, grammar.FormatError(src, err))
}

func TestEBNF(t *testing.T) {
	ebnf := grammar.EBNF()
	assert.Contains(t, ebnf, "Program =")
	assert.Contains(t, ebnf, "Primary =")
}
