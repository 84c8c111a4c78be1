package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"ember/internal/errors"
)

const diagnosticSource = "ember"

// ConvertDiagnostics turns scanner or parser diagnostics into LSP
// diagnostics. Each one covers the character its caret points at.
func ConvertDiagnostics(text string, diags *errors.Diagnostics) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0)
	if diags == nil {
		return diagnostics
	}

	for _, d := range diags.Entries() {
		end := d.Offset
		if end < len(text) && text[end] != '\n' {
			_, width := utf8.DecodeRuneInString(text[end:])
			end += width
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: positionAt(text, d.Offset),
				End:   positionAt(text, end),
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   ptrString(diagnosticSource),
			Message:  d.Message,
		})
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
