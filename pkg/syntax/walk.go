package syntax

// VisitFunc is the callback for WalkLevels. It receives each node together
// with its nesting level: the starting node is level 0, its children level 1,
// and so on. Unrecognized (DeclUnknown) nodes are visited too; they still
// count toward the level of their descendants.
type VisitFunc func(n *Node, level int)

// WalkLevels performs a pre-order traversal from root, carrying the nesting
// level down the tree.
func WalkLevels(root *Node, visit VisitFunc) {
	walkLevels(root, 0, visit)
}

func walkLevels(n *Node, level int, visit VisitFunc) {
	if n == nil {
		return
	}

	visit(n, level)

	for _, child := range n.Children {
		walkLevels(child, level+1, visit)
	}
}

// FindAll returns all nodes under root matching the predicate, in pre-order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node
	WalkLevels(root, func(n *Node, _ int) {
		if predicate(n) {
			result = append(result, n)
		}
	})
	return result
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(root *Node, kind DeclKind) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind == kind
	})
}
