package errors

import (
	"fmt"
	"strings"
)

// Mark is a message anchored at a byte offset of a source.
type Mark struct {
	Offset  int
	Code    string
	Message string
}

// Diagnostic is a single rendered error.
type Diagnostic struct {
	Code     string
	Message  string
	Offset   int    // 0-based byte offset into the source
	Line     int    // 1-based
	Column   int    // 1-based, counted in bytes
	LineText string // the source line containing Offset, without newline
}

// String renders the diagnostic as the offending line followed by a caret
// line:
//
//	let a = 1 == 1 ? 23 : 55;
//	               ^ Illegal character, in line 1
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.LineText)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", d.Column-1))
	fmt.Fprintf(&b, "^ %s, in line %d", d.Message, d.Line)
	return b.String()
}

// Diagnostics is a finalized, ordered set of diagnostics. It is returned as
// the error of a failed scan or parse.
type Diagnostics struct {
	entries []Diagnostic
}

// Error renders every diagnostic, each followed by a newline.
func (d *Diagnostics) Error() string {
	var b strings.Builder
	for _, entry := range d.entries {
		b.WriteString(entry.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Len returns the number of diagnostics in the set.
func (d *Diagnostics) Len() int { return len(d.entries) }

// Entries returns a copy of the diagnostics in report order.
func (d *Diagnostics) Entries() []Diagnostic {
	out := make([]Diagnostic, len(d.entries))
	copy(out, d.entries)
	return out
}

// First returns the first diagnostic. It panics on an empty set.
func (d *Diagnostics) First() Diagnostic { return d.entries[0] }

// Builder accumulates diagnostics against one source. Only the value
// returned by Build is handed out.
type Builder struct {
	source  string
	entries []Diagnostic
}

// NewBuilder creates a builder for diagnostics in source.
func NewBuilder(source string) *Builder {
	return &Builder{source: source}
}

// Add records a message at offset.
func (b *Builder) Add(offset int, code, message string) *Builder {
	b.entries = append(b.entries, locate(b.source, offset, code, message))
	return b
}

// Len returns the number of diagnostics recorded so far.
func (b *Builder) Len() int { return len(b.entries) }

// Build finalizes the set. The builder can keep accumulating afterwards
// without affecting the returned value.
func (b *Builder) Build() *Diagnostics {
	entries := make([]Diagnostic, len(b.entries))
	copy(entries, b.entries)
	return &Diagnostics{entries: entries}
}

// Render builds the diagnostic set for marks in source, in mark order.
func Render(source string, marks []Mark) *Diagnostics {
	b := NewBuilder(source)
	for _, m := range marks {
		b.Add(m.Offset, m.Code, m.Message)
	}
	return b.Build()
}

// At builds a single-entry diagnostic set.
func At(source string, offset int, code, message string) *Diagnostics {
	return NewBuilder(source).Add(offset, code, message).Build()
}

func locate(source string, offset int, code, message string) Diagnostic {
	offset = min(max(offset, 0), len(source))

	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := len(source)
	if i := strings.IndexByte(source[offset:], '\n'); i >= 0 {
		end = offset + i
	}

	return Diagnostic{
		Code:     code,
		Message:  message,
		Offset:   offset,
		Line:     strings.Count(source[:offset], "\n") + 1,
		Column:   offset - start + 1,
		LineText: source[start:end],
	}
}
