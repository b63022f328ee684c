package viz

import (
	"strings"
	"testing"

	"github.com/haziq21/monopoly-ai/engine"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotIncludesRootAndExpandedChildren(t *testing.T) {
	tree, err := state.NewTree(2)
	require.NoError(t, err)
	root := tree.Root()

	children, err := engine.Expand(tree, root)
	require.NoError(t, err)
	require.NotEmpty(t, children)

	dot, err := Dot(tree, root, 1)
	require.NoError(t, err)

	assert.Contains(t, dot, "digraph")
	assert.Contains(t, dot, nodeName(root))
	for _, c := range children {
		assert.Contains(t, dot, nodeName(c))
	}
}

func TestDotRespectsMaxDepth(t *testing.T) {
	tree, err := state.NewTree(2)
	require.NoError(t, err)
	root := tree.Root()

	children, err := engine.Expand(tree, root)
	require.NoError(t, err)
	require.NotEmpty(t, children)
	_, err = engine.Expand(tree, children[0])
	require.NoError(t, err)

	dot, err := Dot(tree, root, 0)
	require.NoError(t, err)
	assert.False(t, strings.Contains(dot, nodeName(children[0])), "depth 0 should only contain the root")
}
