package ast

// TokenIndices returns the indices of every token referenced by the tree
// rooted at n, in traversal order. Null contributes nothing.
func TokenIndices(n Node) []int {
	var indices []int
	Inspect(n, func(n Node) bool {
		switch n := n.(type) {
		case *Identifier:
			indices = append(indices, n.Index)
		case *Integer:
			indices = append(indices, n.Index)
		case *Float:
			indices = append(indices, n.Index)
		case *ImagInteger:
			indices = append(indices, n.Index)
		case *ImagFloat:
			indices = append(indices, n.Index)
		case *String:
			indices = append(indices, n.Index)
		case *ByteString:
			indices = append(indices, n.Index)
		case *PrefixedString:
			indices = append(indices, n.Index)
		case *NoneLiteral:
			indices = append(indices, n.Index)
		case *Bool:
			indices = append(indices, n.Index)
		case *PassStatement:
			indices = append(indices, n.Index)
		case *BreakStatement:
			indices = append(indices, n.Index)
		case *ContinueStatement:
			indices = append(indices, n.Index)
		case *PositionalParamsSeparator:
			indices = append(indices, n.Index)
		case *Operator:
			indices = append(indices, n.Op)
			if n.HasRem() {
				indices = append(indices, n.Rem)
			}
		}
		return true
	})
	return indices
}

// LeafIndex returns the token index held by a leaf node.
func LeafIndex(n Node) (int, bool) {
	indices := TokenIndices(n)
	if len(Children(n)) != 0 || len(indices) == 0 {
		return 0, false
	}
	return indices[0], true
}
