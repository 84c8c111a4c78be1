package lsp

import (
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// LSP positions count characters in UTF-16 code units, while the scanner
// reports byte offsets. These helpers translate between the two.

// positionAt converts a byte offset of text into an LSP position.
func positionAt(text string, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}

	line := strings.Count(text[:offset], "\n")
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1

	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(utf16Len(text[lineStart:offset])),
	}
}

// offsetAt converts an LSP position into a byte offset of text. Positions
// past the end of a line clamp to the line end.
func offsetAt(text string, pos protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		next := strings.IndexByte(text[offset:], '\n')
		if next < 0 {
			return len(text)
		}
		offset += next + 1
	}

	units := protocol.UInteger(0)
	for offset < len(text) && units < pos.Character {
		r, width := utf8.DecodeRuneInString(text[offset:])
		if r == '\n' {
			break
		}
		units += protocol.UInteger(runeUTF16Len(r))
		offset += width
	}
	return offset
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeUTF16Len(r)
	}
	return n
}

func runeUTF16Len(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
