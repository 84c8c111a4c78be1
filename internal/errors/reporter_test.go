package errors

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestRenderSingleLine(t *testing.T) {
	source := "let a = 1 == 1 ? 23 : 55;"

	diags := Render(source, []Mark{{Offset: 15, Code: ErrorIllegalCharacter, Message: MsgIllegalCharacter}})

	require.Equal(t, 1, diags.Len())
	assert.Equal(t, "let a = 1 == 1 ? 23 : 55;\n"+
		"               ^ Illegal character, in line 1\n", diags.Error())

	d := diags.First()
	assert.Equal(t, 1, d.Line)
	assert.Equal(t, 16, d.Column)
	assert.Equal(t, ErrorIllegalCharacter, d.Code)
}

func TestRenderLocatesLine(t *testing.T) {
	source := "a;\n  b ? c;\nd;"

	diags := Render(source, []Mark{{Offset: 7, Message: MsgIllegalCharacter}})

	assert.Equal(t, "  b ? c;\n    ^ Illegal character, in line 2\n", diags.Error())
}

func TestRenderKeepsInputOrder(t *testing.T) {
	source := "?\n?"

	diags := Render(source, []Mark{
		{Offset: 2, Message: "second"},
		{Offset: 0, Message: "first"},
	})

	entries := diags.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Message)
	assert.Equal(t, 2, entries[0].Line)
	assert.Equal(t, "first", entries[1].Message)
	assert.Equal(t, 1, entries[1].Line)
}

func TestRenderEdgeOffsets(t *testing.T) {
	// at the newline itself
	d := At("ab\ncd", 2, "", "here").First()
	assert.Equal(t, "ab", d.LineText)
	assert.Equal(t, 1, d.Line)
	assert.Equal(t, 3, d.Column)

	// one past the end
	d = At("ab\ncd", 5, "", "end").First()
	assert.Equal(t, "cd", d.LineText)
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, 3, d.Column)

	// empty source
	d = At("", 0, "", "empty").First()
	assert.Equal(t, "", d.LineText)
	assert.Equal(t, "\n^ empty, in line 1", d.String())

	// out of range offsets are clamped
	d = At("abc", 42, "", "far").First()
	assert.Equal(t, 3, d.Offset)
}

func TestRenderColumnCountsBytes(t *testing.T) {
	source := "é ?"

	d := At(source, 3, ErrorIllegalCharacter, MsgIllegalCharacter).First()

	assert.Equal(t, 4, d.Column)
	assert.Equal(t, "é ?\n   ^ Illegal character, in line 1", d.String())
}

func TestBuilderIsolatesBuiltValue(t *testing.T) {
	b := NewBuilder("x ? y ?")
	b.Add(2, ErrorIllegalCharacter, MsgIllegalCharacter)

	first := b.Build()
	b.Add(6, ErrorIllegalCharacter, MsgIllegalCharacter)

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 2, b.Build().Len())
	assert.Equal(t, 2, b.Len())

	entries := first.Entries()
	entries[0].Message = "changed"
	assert.Equal(t, MsgIllegalCharacter, first.First().Message)
}

func TestRenderNoMarks(t *testing.T) {
	diags := Render("abc", nil)
	assert.Equal(t, 0, diags.Len())
	assert.Equal(t, "", diags.Error())
}

func TestFormatErrorWithoutColorMatchesPlainText(t *testing.T) {
	source := "let a = \"abc;"
	d := At(source, 8, ErrorUnterminatedString, MsgUnterminatedString).First()

	reporter := NewErrorReporter("test.ember", source)

	assert.Equal(t, d.String()+"\n", reporter.FormatError(d))
}

func TestFormatPretty(t *testing.T) {
	source := "a;\nb ? c;\nd;"
	d := At(source, 5, ErrorIllegalCharacter, MsgIllegalCharacter).First()

	formatted := NewErrorReporter("test.ember", source).FormatPretty(d)

	assert.Contains(t, formatted, "error[E0100]: Illegal character")
	assert.Contains(t, formatted, "test.ember:2:3")
	assert.Contains(t, formatted, "  1 │ a;")
	assert.Contains(t, formatted, "  2 │ b ? c;")
	assert.Contains(t, formatted, "    │   ^")
	assert.Contains(t, formatted, "  3 │ d;")
}

func TestFormatAll(t *testing.T) {
	source := "? ?"
	diags := Render(source, []Mark{
		{Offset: 0, Code: ErrorIllegalCharacter, Message: MsgIllegalCharacter},
		{Offset: 2, Code: ErrorIllegalCharacter, Message: MsgIllegalCharacter},
	})

	reporter := NewErrorReporter("test.ember", source)

	assert.Equal(t, diags.Error(), reporter.FormatAll(diags, false))
	assert.Contains(t, reporter.FormatAll(diags, true), "test.ember:1:3")
}
