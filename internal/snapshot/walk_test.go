package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(v string) *Node {
	return NewNode(RoleStaticText, map[string]string{AttrValue: v})
}

func TestWalkPreOrder(t *testing.T) {
	root := NewNode(RoleGroup, nil,
		NewNode(RoleGroup, nil, text("a"), text("b")),
		text("c"),
	)

	var seen []string
	Walk(root, func(n *Node) bool {
		if v, ok := n.Value(); ok {
			seen = append(seen, v)
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestWalkSkipsChildren(t *testing.T) {
	root := NewNode(RoleGroup, nil,
		NewNode(RoleTable, nil, text("hidden")),
		text("shown"),
	)

	var seen []string
	Walk(root, func(n *Node) bool {
		if v, ok := n.Value(); ok {
			seen = append(seen, v)
		}
		return !n.Is(RoleTable)
	})
	assert.Equal(t, []string{"shown"}, seen)
}

func TestFind(t *testing.T) {
	target := NewNode(RoleGroup, map[string]string{AttrDescription: "Live Captions"})
	root := NewNode(RoleGroup, nil,
		NewNode(RoleGroup, map[string]string{AttrDescription: "Toolbar"}),
		NewNode(RoleGroup, nil, target),
	)

	got := Find(root, ByRole(RoleGroup, "Live Captions"))
	require.NotNil(t, got)
	assert.Same(t, target, got)

	assert.Same(t, root, Find(root, ByRole(RoleGroup, "")))
	assert.Nil(t, Find(root, ByRole(RoleTable, "")))
}

func TestFindAllAndDescendants(t *testing.T) {
	root := NewNode(RoleGroup, nil,
		text("one"),
		NewNode(RoleGroup, nil, text("two"), NewNode(RoleGroup, nil, text("three"))),
	)

	all := FindAll(root, ByRole(RoleStaticText, ""))
	assert.Len(t, all, 3)

	assert.Len(t, Descendants(root.Child(1), RoleStaticText), 2)
	assert.Empty(t, Descendants(text("x"), RoleStaticText))
}
