package lsp

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ember/token"
)

// completionCandidate is a word offered for completion.
type completionCandidate struct {
	label string
	kind  protocol.CompletionItemKind
}

// completionItems ranks keywords and the document's identifiers against the
// word being typed at offset. With no word typed, every candidate is
// returned in alphabetical order.
func completionItems(text string, offset int, identifiers []string) []protocol.CompletionItem {
	candidates := completionCandidates(identifiers)
	word := wordBefore(text, offset)

	items := make([]protocol.CompletionItem, 0, len(candidates))
	if word == "" {
		for _, c := range candidates {
			items = append(items, completionItem(c))
		}
		return items
	}

	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.label
	}

	// Matches come back ranked best-first. The word itself is not worth
	// offering.
	for _, match := range fuzzy.Find(word, labels) {
		if match.Str == word {
			continue
		}
		items = append(items, completionItem(candidates[match.Index]))
	}
	return items
}

func completionCandidates(identifiers []string) []completionCandidate {
	seen := make(map[string]bool)
	var candidates []completionCandidate

	for _, kw := range token.Keywords() {
		seen[kw] = true
		candidates = append(candidates, completionCandidate{label: kw, kind: protocol.CompletionItemKindKeyword})
	}
	for _, ident := range identifiers {
		if seen[ident] {
			continue
		}
		seen[ident] = true
		candidates = append(candidates, completionCandidate{label: ident, kind: protocol.CompletionItemKindVariable})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].label < candidates[j].label
	})
	return candidates
}

func completionItem(c completionCandidate) protocol.CompletionItem {
	kind := c.kind
	return protocol.CompletionItem{
		Label: c.label,
		Kind:  &kind,
	}
}

// wordBefore returns the identifier characters immediately before offset.
func wordBefore(text string, offset int) string {
	start := offset
	for start > 0 {
		r, width := utf8.DecodeLastRuneInString(text[:start])
		if !isWordRune(r) {
			break
		}
		start -= width
	}
	return text[start:offset]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || ('0' <= r && r <= '9')
}

// identifierNames lists the distinct identifiers among tokens, in order of
// first appearance.
func identifierNames(tokens []token.Token) []string {
	seen := make(map[string]bool)
	var names []string
	for _, tok := range tokens {
		if tok.Type == token.IDENTIFIER && !seen[tok.Lexeme] {
			seen[tok.Lexeme] = true
			names = append(names, tok.Lexeme)
		}
	}
	return names
}
