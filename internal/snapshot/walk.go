package snapshot

// Visit is called for every node in pre-order. Returning false skips the
// node's children.
type Visit func(n *Node) bool

// Walk traverses the tree depth-first, pre-order.
func Walk(root *Node, visit Visit) {
	if root == nil {
		return
	}
	if !visit(root) {
		return
	}
	for _, c := range root.children {
		Walk(c, visit)
	}
}

// Find returns the first node in pre-order satisfying match, root included.
func Find(root *Node, match func(*Node) bool) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll collects every node satisfying match in pre-order. Matching nodes
// are not searched further.
func FindAll(root *Node, match func(*Node) bool) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		if match(n) {
			out = append(out, n)
			return false
		}
		return true
	})
	return out
}

// Descendants returns every node below root (root excluded) with the given
// role, in pre-order.
func Descendants(root *Node, role string) []*Node {
	var out []*Node
	for _, c := range root.Children() {
		Walk(c, func(n *Node) bool {
			if n.role == role {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}

// ByRole returns a matcher for Find on role and, when non-empty, description.
func ByRole(role, description string) func(*Node) bool {
	return func(n *Node) bool {
		if n.role != role {
			return false
		}
		return description == "" || n.Description() == description
	}
}
