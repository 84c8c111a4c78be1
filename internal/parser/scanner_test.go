package parser

import (
	stderrors "errors"
	"testing"

	"ember/internal/errors"
	"ember/token"
)

// scanInner scans input and strips the synthetic braces.
func scanInner(t *testing.T, input string) []token.Token {
	t.Helper()
	tokens, err := NewScanner(input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error:\n%s", err)
	}
	if len(tokens) < 2 {
		t.Fatalf("expected at least the synthetic braces, got %d tokens", len(tokens))
	}
	return tokens[1 : len(tokens)-1]
}

func scanErrors(t *testing.T, input string) []errors.Diagnostic {
	t.Helper()
	tokens, err := NewScanner(input).ScanTokens()
	if err == nil {
		t.Fatalf("expected scan errors, got %d tokens", len(tokens))
	}
	if tokens != nil {
		t.Errorf("expected no tokens on failure, got %d", len(tokens))
	}
	var diags *errors.Diagnostics
	if !stderrors.As(err, &diags) {
		t.Fatalf("expected *errors.Diagnostics, got %T", err)
	}
	return diags.Entries()
}

func expectTypes(t *testing.T, tokens []token.Token, expected []token.TokenType) {
	t.Helper()
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	input := `(){}[],.;:+-*/%! != == = < <= > >=`
	expected := []token.TokenType{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.LEFT_BRACKET, token.RIGHT_BRACKET, token.COMMA, token.DOT,
		token.SEMICOLON, token.COLON, token.PLUS, token.MINUS, token.STAR,
		token.SLASH, token.PERCENT, token.BANG, token.BANG_EQUAL,
		token.EQUAL_EQUAL, token.EQUAL, token.LESS, token.LESS_EQUAL,
		token.GREATER, token.GREATER_EQUAL,
	}

	expectTypes(t, scanInner(t, input), expected)
}

func TestEqualVersusEqualEqual(t *testing.T) {
	tokens := scanInner(t, "a = b == c")
	expectTypes(t, tokens, []token.TokenType{
		token.IDENTIFIER, token.EQUAL, token.IDENTIFIER, token.EQUAL_EQUAL, token.IDENTIFIER,
	})
	if tokens[3].Lexeme != "==" {
		t.Errorf("expected lexeme '==', got %q", tokens[3].Lexeme)
	}
	if tokens[3].Span != (token.Span{Start: 6, End: 8}) {
		t.Errorf("unexpected span %+v", tokens[3].Span)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "let fn return for while if else null print true false name _x x1"
	expected := []token.TokenType{
		token.LET, token.FN, token.RETURN, token.FOR, token.WHILE, token.IF,
		token.ELSE, token.NULL, token.PRINT, token.BOOLEAN, token.BOOLEAN,
		token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER,
	}

	tokens := scanInner(t, input)
	expectTypes(t, tokens, expected)

	if tokens[9].Literal != true || tokens[10].Literal != false {
		t.Errorf("expected boolean values, got %v and %v", tokens[9].Literal, tokens[10].Literal)
	}
	if tokens[12].Literal != "_x" {
		t.Errorf("expected identifier to carry its text, got %v", tokens[12].Literal)
	}
}

func TestNumbers(t *testing.T) {
	tokens := scanInner(t, "42 3.14 .5 7.")
	expectTypes(t, tokens, []token.TokenType{token.INT, token.FLOAT, token.FLOAT, token.FLOAT})

	expected := []any{int64(42), 3.14, 0.5, 7.0}
	for i, exp := range expected {
		if tokens[i].Literal != exp {
			t.Errorf("token %d: expected %v, got %v", i, exp, tokens[i].Literal)
		}
	}
}

func TestStrings(t *testing.T) {
	tokens := scanInner(t, `"hello" 'world' "a\"b"`)
	expectTypes(t, tokens, []token.TokenType{token.STRING, token.STRING, token.STRING})

	expected := []string{"hello", "world", `a\"b`}
	for i, exp := range expected {
		if tokens[i].Literal != exp {
			t.Errorf("token %d: expected %q, got %v", i, exp, tokens[i].Literal)
		}
	}
	if tokens[1].Lexeme != "'world'" {
		t.Errorf("expected lexeme to keep quotes, got %q", tokens[1].Lexeme)
	}
}

func TestComments(t *testing.T) {
	tokens := scanInner(t, "# a comment ? with junk\nvalue # trailing")
	expectTypes(t, tokens, []token.TokenType{token.IDENTIFIER})
	if tokens[0].Pos() != 24 {
		t.Errorf("expected identifier at offset 24, got %d", tokens[0].Pos())
	}
}

func TestSyntheticBraces(t *testing.T) {
	cases := []struct {
		input string
		last  int
	}{
		{"", 0},
		{"a;", 1},
		{"x = 10;\n", 7},
		{"xé", 1},
	}

	for _, tc := range cases {
		tokens, err := NewScanner(tc.input).ScanTokens()
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.input, err)
		}

		first, last := tokens[0], tokens[len(tokens)-1]
		if first.Type != token.LEFT_BRACE || first.Pos() != 0 {
			t.Errorf("%q: expected leading '{' at 0, got %s at %d", tc.input, first.Type, first.Pos())
		}
		if last.Type != token.RIGHT_BRACE || last.Pos() != tc.last {
			t.Errorf("%q: expected trailing '}' at %d, got %s at %d", tc.input, tc.last, last.Type, last.Pos())
		}
	}
}

func TestIllegalCharactersAreAllReported(t *testing.T) {
	entries := scanErrors(t, "a ? b;\n?")

	if len(entries) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(entries))
	}
	if entries[0].Line != 1 || entries[0].Column != 3 {
		t.Errorf("first error at %d:%d", entries[0].Line, entries[0].Column)
	}
	if entries[1].Line != 2 || entries[1].Column != 1 {
		t.Errorf("second error at %d:%d", entries[1].Line, entries[1].Column)
	}
	for _, e := range entries {
		if e.Code != errors.ErrorIllegalCharacter {
			t.Errorf("expected %s, got %s", errors.ErrorIllegalCharacter, e.Code)
		}
	}
}

func TestIllegalCharacterRendering(t *testing.T) {
	_, err := NewScanner("let a = 1 == 1 ? 23 : 55;").ScanTokens()
	if err == nil {
		t.Fatal("expected an error")
	}

	expected := "let a = 1 == 1 ? 23 : 55;\n" +
		"               ^ Illegal character, in line 1\n"
	if err.Error() != expected {
		t.Errorf("unexpected rendering:\n%s", err.Error())
	}
}

func TestUnterminatedString(t *testing.T) {
	entries := scanErrors(t, "x;\nlet a = \"abc;")

	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 error, got %d", len(entries))
	}
	e := entries[0]
	if e.Code != errors.ErrorUnterminatedString || e.Message != errors.MsgUnterminatedString {
		t.Errorf("unexpected error %s %q", e.Code, e.Message)
	}
	if e.Line != 2 || e.Offset != 11 {
		t.Errorf("expected error at the opening quote, got line %d offset %d", e.Line, e.Offset)
	}
}

func TestSecondDotInNumber(t *testing.T) {
	entries := scanErrors(t, "5.2.3")

	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 error, got %d", len(entries))
	}
	if entries[0].Code != errors.ErrorUnexpectedDot || entries[0].Offset != 3 {
		t.Errorf("expected %s at offset 3, got %s at %d", errors.ErrorUnexpectedDot, entries[0].Code, entries[0].Offset)
	}
}

func TestSecondDotSkipsRestOfStatement(t *testing.T) {
	// The ';' ends the skipped region, so the '?' after it is still reported.
	entries := scanErrors(t, "x = 1.2.3 ? ?; y ?")

	if len(entries) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(entries))
	}
	if entries[1].Code != errors.ErrorIllegalCharacter || entries[1].Offset != 17 {
		t.Errorf("unexpected second error %s at %d", entries[1].Code, entries[1].Offset)
	}
}

func TestNumberOutOfRange(t *testing.T) {
	entries := scanErrors(t, "99999999999999999999;")

	if len(entries) != 1 || entries[0].Code != errors.ErrorNumberOutOfRange {
		t.Fatalf("expected one %s error, got %v", errors.ErrorNumberOutOfRange, entries)
	}
}

func TestNonASCIIIdentifier(t *testing.T) {
	tokens := scanInner(t, "café = 1;")
	if tokens[0].Lexeme != "café" {
		t.Errorf("expected 'café', got %q", tokens[0].Lexeme)
	}
	if tokens[1].Pos() != 6 {
		t.Errorf("expected '=' at byte offset 6, got %d", tokens[1].Pos())
	}
}
