// Package snapshot holds the in-memory tree of one captured accessibility
// export. Nodes are immutable once decoded.
package snapshot

// Roles emitted by the accessibility exporter.
const (
	RoleGroup      = "AXGroup"
	RoleStaticText = "AXStaticText"
	RoleTable      = "AXTable"
	RoleRow        = "AXRow"
	RoleCell       = "AXCell"
	RoleTextArea   = "AXTextArea"
	RoleImage      = "AXImage"
	RoleScrollArea = "AXScrollArea"
)

// Attribute keys recognized on a node.
const (
	AttrValue       = "value"
	AttrDescription = "description"
	AttrTitle       = "title"
	AttrSubrole     = "subrole"
	AttrHelp        = "help"
	AttrLabel       = "label"
)

// Node is one element of a captured UI tree. Children keep traversal order.
type Node struct {
	role     string
	attrs    map[string]string
	children []*Node
}

// NewNode builds a node. It is mostly useful for tests and fixtures.
func NewNode(role string, attrs map[string]string, children ...*Node) *Node {
	n := &Node{role: role, children: children}
	if len(attrs) > 0 {
		n.attrs = make(map[string]string, len(attrs))
		for k, v := range attrs {
			n.attrs[k] = v
		}
	}
	return n
}

// Role returns the node's role tag, or "" when absent.
func (n *Node) Role() string {
	if n == nil {
		return ""
	}
	return n.role
}

// Attr returns the named attribute and whether it was present.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	v, ok := n.attrs[key]
	return v, ok
}

// Value is shorthand for Attr(AttrValue).
func (n *Node) Value() (string, bool) {
	return n.Attr(AttrValue)
}

// Description returns the description attribute or "".
func (n *Node) Description() string {
	v, _ := n.Attr(AttrDescription)
	return v
}

// Children returns the ordered child list. Callers must not modify it.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// Child returns the i-th child or nil when out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Is reports whether the node has the given role.
func (n *Node) Is(role string) bool {
	return n != nil && n.role == role
}

// Empty reports whether the node carries no transcript information.
func (n *Node) Empty() bool {
	return n == nil || (n.role == "" && len(n.attrs) == 0 && len(n.children) == 0)
}
