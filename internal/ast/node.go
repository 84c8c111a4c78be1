package ast

// Node is any element of the expression tree. Nodes are never mutated once
// the parser hands them out.
type Node interface {
	// NodePos is the byte offset of the token that introduced the node.
	NodePos() int
	NodeType() NodeType
	String() string
}

func (l *Literal) NodePos() int     { return l.Pos }
func (*Literal) NodeType() NodeType { return LITERAL }

func (i *Ident) NodePos() int     { return i.Pos }
func (*Ident) NodeType() NodeType { return IDENT }

func (l *Let) NodePos() int     { return l.Pos }
func (*Let) NodeType() NodeType { return LET }

func (g *Group) NodePos() int     { return g.Pos }
func (*Group) NodeType() NodeType { return GROUP }

func (b *Block) NodePos() int     { return b.Pos }
func (*Block) NodeType() NodeType { return BLOCK }

func (b *Binary) NodePos() int     { return b.Pos }
func (*Binary) NodeType() NodeType { return BINARY }
