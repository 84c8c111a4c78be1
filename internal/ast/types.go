package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	ILLEGAL NodeType = iota
	LITERAL
	IDENT
	LET
	GROUP
	BLOCK
	BINARY
)

// BinaryOp is the operator of a Binary expression.
//
//go:generate stringer -type=BinaryOp
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Modulo
	Equal // assignment
	EqualEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	NotEqual
)

// IsComparison reports whether op yields a boolean comparison.
func (op BinaryOp) IsComparison() bool {
	return op >= EqualEqual && op <= NotEqual
}
