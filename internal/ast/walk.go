package ast

// Inspect traverses the tree rooted at node in depth-first order, calling f
// for each node before its children. Children are skipped when f returns
// false.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Let:
		Inspect(n.Value, f)
	case *Group:
		Inspect(n.Value, f)
	case *Block:
		for _, expr := range n.Exprs {
			Inspect(expr, f)
		}
	case *Binary:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	}
}

// LetTargets returns the identifiers bound by let expressions in the tree,
// in source order.
func LetTargets(node Node) []*Ident {
	var targets []*Ident
	Inspect(node, func(n Node) bool {
		let, ok := n.(*Let)
		if !ok {
			return true
		}
		if assign, ok := let.Value.(*Binary); ok {
			if ident, ok := assign.Left.(*Ident); ok {
				targets = append(targets, ident)
			}
		}
		return true
	})
	return targets
}
