package parser

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"ember/internal/errors"
	"ember/token"
)

// Scanner turns source text into tokens. It walks the source rune by rune,
// so every offset it records falls on a UTF-8 boundary.
type Scanner struct {
	source  string
	tokens  []token.Token
	start   int
	current int
	errors  *errors.Builder
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		errors: errors.NewBuilder(source),
	}
}

// ScanTokens scans the whole source. Lexical errors do not stop the scan;
// if any occurred, they are all returned as one *errors.Diagnostics and no
// tokens are returned. On success the tokens are enclosed in a synthetic
// '{' at offset 0 and a synthetic '}' at the last rune of the source, so
// the parser reads the program as a single block.
func (s *Scanner) ScanTokens() ([]token.Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	if s.errors.Len() > 0 {
		return nil, s.errors.Build()
	}

	_, width := utf8.DecodeLastRuneInString(s.source)
	last := len(s.source) - width

	tokens := make([]token.Token, 0, len(s.tokens)+2)
	tokens = append(tokens, token.Token{Type: token.LEFT_BRACE, Span: token.Span{Start: 0, End: 0}})
	tokens = append(tokens, s.tokens...)
	tokens = append(tokens, token.Token{Type: token.RIGHT_BRACE, Span: token.Span{Start: last, End: last}})
	return tokens, nil
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case '[':
		s.addToken(token.LEFT_BRACKET)
	case ']':
		s.addToken(token.RIGHT_BRACKET)
	case ',':
		s.addToken(token.COMMA)
	case ';':
		s.addToken(token.SEMICOLON)
	case ':':
		s.addToken(token.COLON)
	case '+':
		s.addToken(token.PLUS)
	case '-':
		s.addToken(token.MINUS)
	case '*':
		s.addToken(token.STAR)
	case '/':
		s.addToken(token.SLASH)
	case '%':
		s.addToken(token.PERCENT)

	// Operators with a two-character variant
	case '=':
		s.scanEqualOperator()
	case '<':
		s.scanLessOperator()
	case '>':
		s.scanGreaterOperator()
	case '!':
		s.scanBangOperator()

	case '#':
		s.skipRest(false)

	// Whitespace (ignored)
	case ' ', '\r', '\t', '\n':

	case '.':
		s.scanFraction()

	case '"', '\'':
		s.scanString(c)

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanEqualOperator() {
	if s.matchNext('=') {
		s.addToken(token.EQUAL_EQUAL)
	} else {
		s.addToken(token.EQUAL)
	}
}

func (s *Scanner) scanLessOperator() {
	if s.matchNext('=') {
		s.addToken(token.LESS_EQUAL)
	} else {
		s.addToken(token.LESS)
	}
}

func (s *Scanner) scanGreaterOperator() {
	if s.matchNext('=') {
		s.addToken(token.GREATER_EQUAL)
	} else {
		s.addToken(token.GREATER)
	}
}

func (s *Scanner) scanBangOperator() {
	if s.matchNext('=') {
		s.addToken(token.BANG_EQUAL)
	} else {
		s.addToken(token.BANG)
	}
}

func (s *Scanner) scanDefault(c rune) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(s.start, errors.ErrorIllegalCharacter, errors.MsgIllegalCharacter)
	}
}

// scanNumber scans an integer, handing over to scanFraction at a '.'.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' {
		s.advance()
		s.scanFraction()
		return
	}

	value, err := strconv.ParseInt(s.source[s.start:s.current], 10, 64)
	if err != nil {
		s.reportError(s.start, errors.ErrorNumberOutOfRange, errors.MsgNumberOutOfRange)
		return
	}
	s.addLiteral(token.INT, value)
}

// scanFraction scans the digits after a '.'. A lone '.' is a DOT token.
// A second '.' drops the literal and the rest of the statement.
func (s *Scanner) scanFraction() {
	for {
		c := s.peek()
		if isDigit(c) {
			s.advance()
			continue
		}
		if c == '.' {
			s.reportError(s.current, errors.ErrorUnexpectedDot, errors.MsgUnexpectedDot)
			s.skipRest(true)
			return
		}
		break
	}

	text := s.source[s.start:s.current]
	if text == "." {
		s.addToken(token.DOT)
		return
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.reportError(s.start, errors.ErrorNumberOutOfRange, errors.MsgNumberOutOfRange)
		return
	}
	s.addLiteral(token.FLOAT, value)
}

// scanString scans up to the matching delimiter. A delimiter right after a
// backslash does not close the literal. The value is the raw text between
// the quotes.
func (s *Scanner) scanString(delim rune) {
	prev := ' '
	for !s.isAtEnd() {
		c := s.advance()
		if c == delim && prev != '\\' {
			s.addLiteral(token.STRING, s.source[s.start+1:s.current-1])
			return
		}
		prev = c
	}

	s.reportError(s.start, errors.ErrorUnterminatedString, errors.MsgUnterminatedString)
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}

	tt, value := token.LookupIdent(s.source[s.start:s.current])
	s.addLiteral(tt, value)
}

// skipRest discards input up to and including the next newline, or the
// next ';' as well when atSemicolon is set.
func (s *Scanner) skipRest(atSemicolon bool) {
	for !s.isAtEnd() {
		c := s.advance()
		if c == '\n' || (atSemicolon && c == ';') {
			return
		}
	}
}

func (s *Scanner) advance() rune {
	r, width := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += width
	return r
}

func (s *Scanner) matchNext(expected rune) bool {
	if s.isAtEnd() || s.peek() != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

func (s *Scanner) addToken(tokenType token.TokenType) {
	s.addLiteral(tokenType, nil)
}

func (s *Scanner) addLiteral(tokenType token.TokenType, value any) {
	s.tokens = append(s.tokens, token.Token{
		Type:    tokenType,
		Lexeme:  s.source[s.start:s.current],
		Span:    token.Span{Start: s.start, End: s.current},
		Literal: value,
	})
}

func (s *Scanner) reportError(offset int, code, message string) {
	s.errors.Add(offset, code, message)
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
