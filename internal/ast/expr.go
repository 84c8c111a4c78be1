package ast

type Expr interface {
	Node
	isExpr()
}

func (*Literal) isExpr() {}

func (*Ident) isExpr() {}

func (*Let) isExpr() {}

func (*Group) isExpr() {}

func (*Block) isExpr() {}

func (*Binary) isExpr() {}

// Lit is the decoded value of a literal: Str, Int, Float or Bool.
type Lit interface {
	isLit()
	String() string
}

type (
	Str   string
	Int   int64
	Float float64
	Bool  bool
)

func (Str) isLit()   {}
func (Int) isLit()   {}
func (Float) isLit() {}
func (Bool) isLit()  {}

// Literal is a string, integer, float or boolean constant.
// Example: 'name', 42, 2.5, true
type Literal struct {
	Pos   int
	Value Lit
}

// Ident is a reference to a variable.
// Example: total
type Ident struct {
	Pos  int
	Name string
}

// Let is a variable binding; Value is always an assignment.
// Example: let a = 1
type Let struct {
	Pos   int
	Value Expr
}

// Group is a parenthesized expression.
// Example: (a + b)
type Group struct {
	Pos   int
	Value Expr
}

// Block is a sequence of expressions in braces. Every program is parsed as
// one Block.
// Example: { let a = 1; a + 2 }
type Block struct {
	Pos   int
	Exprs []Expr
}

// Binary is an infix operation. Pos is the offset of the operator.
// Example: a + b, x = 3, y <= z
type Binary struct {
	Pos   int
	Left  Expr
	Op    BinaryOp
	Right Expr
}
