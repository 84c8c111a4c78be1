package lsp

import (
	"strings"

	"ember/internal/ast"
	"ember/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions in UTF-16 units
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens classifies the scanned tokens of text. Identifiers
// bound by let carry the declaration modifier. Punctuation and the
// synthetic braces are not reported.
func collectSemanticTokens(text string, tokens []token.Token, tree *ast.Block) []SemanticToken {
	declared := make(map[int]bool)
	if tree != nil {
		for _, ident := range ast.LetTargets(tree) {
			declared[ident.Pos] = true
		}
	}

	var result []SemanticToken
	for _, tok := range tokens {
		if tok.Lexeme == "" {
			continue
		}

		tokenType, ok := semanticType(tok.Type)
		if !ok {
			continue
		}

		modifiers := 0
		if tok.Type == token.IDENTIFIER && declared[tok.Pos()] {
			modifiers = 1 << indexOf("declaration", SemanticTokenModifiers)
		}

		result = append(result, makeTokens(text, tok.Span, indexOf(tokenType, SemanticTokenTypes), modifiers)...)
	}

	return result
}

func semanticType(tt token.TokenType) (string, bool) {
	switch {
	case tt.IsKeyword(), tt == token.BOOLEAN:
		return "keyword", true
	case tt == token.IDENTIFIER:
		return "variable", true
	case tt == token.STRING:
		return "string", true
	case tt == token.INT, tt == token.FLOAT:
		return "number", true
	case tt >= token.PLUS && tt <= token.BANG_EQUAL:
		return "operator", true
	}
	return "", false
}

// makeTokens creates the semantic tokens for a span. A span crossing line
// breaks (a multi-line string) is split into one token per line.
func makeTokens(text string, span token.Span, tokenType, modifiers int) []SemanticToken {
	var tokens []SemanticToken

	start := span.Start
	for _, segment := range strings.SplitAfter(text[span.Start:span.End], "\n") {
		body := strings.TrimSuffix(segment, "\n")
		if body != "" {
			pos := positionAt(text, start)
			tokens = append(tokens, SemanticToken{
				Line:           uint32(pos.Line),
				StartChar:      uint32(pos.Character),
				Length:         uint32(utf16Len(body)),
				TokenType:      tokenType,
				TokenModifiers: modifiers,
			})
		}
		start += len(segment)
	}

	return tokens
}

// encodeSemanticTokens encodes tokens into the LSP wire format, using
// delta-line and delta-start compression.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
