package ast

import "strings"

// ToMap converts a tree to nested maps and slices of native Go values,
// ready for JSON or YAML encoding.
func ToMap(node Node) map[string]any {
	if node == nil {
		return nil
	}

	result := map[string]any{
		"kind": strings.ToLower(node.NodeType().String()),
		"pos":  node.NodePos(),
	}

	switch n := node.(type) {
	case *Literal:
		result["type"], result["value"] = ToNative(n.Value)
	case *Ident:
		result["name"] = n.Name
	case *Let:
		result["value"] = ToMap(n.Value)
	case *Group:
		result["value"] = ToMap(n.Value)
	case *Block:
		exprs := make([]any, len(n.Exprs))
		for i, expr := range n.Exprs {
			exprs[i] = ToMap(expr)
		}
		result["exprs"] = exprs
	case *Binary:
		result["op"] = n.Op.String()
		result["left"] = ToMap(n.Left)
		result["right"] = ToMap(n.Right)
	}

	return result
}

// ToNative returns the type name and native Go value of a literal.
func ToNative(v Lit) (string, any) {
	switch v := v.(type) {
	case Str:
		return "str", string(v)
	case Int:
		return "int", int64(v)
	case Float:
		return "float", float64(v)
	case Bool:
		return "bool", bool(v)
	default:
		return "unknown", nil
	}
}
