package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (s Str) String() string {
	return `"` + string(s) + `"`
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10) + "i"
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64) + "f"
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (l *Literal) String() string {
	return l.Value.String()
}

func (i *Ident) String() string {
	return "`" + i.Name + "`"
}

func (l *Let) String() string {
	return "let " + l.Value.String()
}

func (g *Group) String() string {
	return "(" + g.Value.String() + ")"
}

func (b *Binary) String() string {
	return fmt.Sprintf("[%s %s %s]", b.Left.String(), b.Op, b.Right.String())
}

func (b *Block) String() string {
	var sb strings.Builder

	sb.WriteString("{\n")
	for _, expr := range b.Exprs {
		sb.WriteString("  " + strings.ReplaceAll(expr.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")

	return sb.String()
}
