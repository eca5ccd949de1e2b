package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	Base
	name string
}

type otherNode struct {
	Base
}

func newTestNode(name string) *testNode {
	n := &testNode{name: name}
	n.Bind(n)
	return n
}

func newOtherNode() *otherNode {
	n := &otherNode{}
	n.Bind(n)
	return n
}

func TestAddChild_OrderAndParent(t *testing.T) {
	root := newTestNode("root")
	a := newTestNode("a")
	b := newTestNode("b")

	root.AddChild(a)
	root.AddChild(b)

	require.Len(t, root.Children(), 2)
	assert.Same(t, a, root.Children()[0])
	assert.Same(t, b, root.Children()[1])
	assert.Same(t, root, a.Parent())
	assert.True(t, IsRoot(root))
	assert.False(t, IsRoot(a))
}

func TestAddChild_Nil(t *testing.T) {
	root := newTestNode("root")
	root.AddChild(nil)
	assert.Empty(t, root.Children())
}

func TestAddChild_Unbound(t *testing.T) {
	var root testNode
	child := newTestNode("child")
	root.AddChild(child)

	assert.Len(t, root.Children(), 1)
	assert.Nil(t, child.Parent())
}

func TestDepth(t *testing.T) {
	root := newTestNode("root")
	mid := newTestNode("mid")
	leaf := newTestNode("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	assert.Equal(t, 0, Depth(root))
	assert.Equal(t, 1, Depth(mid))
	assert.Equal(t, 2, Depth(leaf))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a := newTestNode("a")
	b := newTestNode("b")

	assert.Equal(t, 1, r.Add(a))
	assert.Equal(t, 2, r.Add(b))
	assert.Equal(t, 1, r.Add(a), "re-adding keeps the id")
	assert.Equal(t, 2, r.Len())

	got, ok := r.Lookup(2)
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = r.Lookup(0)
	assert.False(t, ok)
	_, ok = r.Lookup(3)
	assert.False(t, ok)

	found, ok := r.Find(func(n Node) bool { return n.(*testNode).name == "a" })
	require.True(t, ok)
	assert.Equal(t, 1, found.ID())
}

func TestWalkAndSearch(t *testing.T) {
	// root
	// ├── a
	// │   └── o1
	// │       └── c
	// └── o2
	root := newTestNode("root")
	a := newTestNode("a")
	o1 := newOtherNode()
	c := newTestNode("c")
	o2 := newOtherNode()
	root.AddChild(a)
	a.AddChild(o1)
	o1.AddChild(c)
	root.AddChild(o2)

	var order []string
	Walk(root, func(n Node) bool {
		order = append(order, label(n))
		return true
	})
	assert.Equal(t, []string{"root", "a", "other", "c", "other"}, order)

	t.Run("ancestor", func(t *testing.T) {
		got, ok := AncestorOf[*otherNode](c)
		require.True(t, ok)
		assert.Same(t, o1, got)

		_, ok = AncestorOf[*otherNode](a)
		assert.False(t, ok)
	})

	t.Run("descendants all", func(t *testing.T) {
		got := DescendantsOf[*testNode](root, true)
		require.Len(t, got, 3)
		assert.Same(t, root, got[0])
		assert.Same(t, a, got[1])
		assert.Same(t, c, got[2])
	})

	t.Run("descendants stop at match", func(t *testing.T) {
		got := DescendantsOf[*testNode](root, false)
		require.Len(t, got, 1)
		assert.Same(t, root, got[0])
	})

	t.Run("of type", func(t *testing.T) {
		got := OfType[*otherNode](root.Children())
		require.Len(t, got, 1)
		assert.Same(t, o2, got[0])
	})
}

func label(n Node) string {
	if tn, ok := n.(*testNode); ok {
		return tn.name
	}
	return "other"
}
