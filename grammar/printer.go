package grammar

import (
	"strconv"
	"strings"
)

var operatorNames = map[string]string{
	"+":  "Add",
	"-":  "Sub",
	"*":  "Mul",
	"/":  "Div",
	"%":  "Modulo",
	"=":  "Equal",
	"==": "EqualEqual",
	"<":  "Less",
	"<=": "LessEqual",
	">":  "Greater",
	">=": "GreaterEqual",
	"!=": "NotEqual",
}

// String prints the program in the same notation as the parser's
// expression tree, so both can be compared directly.
func (p *Program) String() string {
	return statementsString(p.Statements)
}

func (b *Block) String() string {
	return statementsString(b.Statements)
}

func statementsString(statements []*Statement) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range statements {
		b.WriteString("  " + strings.ReplaceAll(s.Expr.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (e *Expression) String() string {
	switch {
	case e.Let != nil:
		return "let " + e.Let.String()
	case e.Assignment != nil:
		return e.Assignment.String()
	default:
		return e.Comparison.String()
	}
}

func (a *Assignment) String() string {
	return binary("`"+a.Target+"`", "=", a.Value.String())
}

func (c *Comparison) String() string {
	out := c.Left.String()
	for _, op := range c.Ops {
		out = binary(out, op.Operator, op.Right.String())
	}
	return out
}

func (a *Additive) String() string {
	out := a.Left.String()
	for _, op := range a.Ops {
		out = binary(out, op.Operator, op.Right.String())
	}
	return out
}

func (m *Multiplicative) String() string {
	out := m.Left.String()
	for _, op := range m.Ops {
		out = binary(out, op.Operator, op.Right.String())
	}
	return out
}

func (p *Primary) String() string {
	switch {
	case p.Float != nil:
		return strconv.FormatFloat(*p.Float, 'f', -1, 64) + "f"
	case p.Int != nil:
		return strconv.FormatInt(int64(*p.Int), 10) + "i"
	case p.Str != nil:
		// Drop the delimiters, keep the body as written.
		s := *p.Str
		return `"` + s[1:len(s)-1] + `"`
	case p.Bool != nil:
		return strconv.FormatBool(bool(*p.Bool))
	case p.Ident != nil:
		return "`" + *p.Ident + "`"
	case p.Group != nil:
		return "(" + p.Group.String() + ")"
	case p.Block != nil:
		return p.Block.String()
	}
	return ""
}

func binary(left, operator, right string) string {
	return "[" + left + " " + operatorNames[operator] + " " + right + "]"
}
