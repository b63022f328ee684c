// Package viz dumps a subtree of the state arena as a Graphviz dot-format
// graph, using github.com/awalterschulze/gographviz.
package viz

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/pkg/errors"
)

// Dot renders the subtree rooted at root, down to maxDepth levels below
// root, as a dot-format string. Only children already materialized in the
// arena are visited — a caller wanting a fully expanded dump walks the
// tree with engine.Expand first (see cmd/dump), which keeps this package
// free of a dependency on engine.
func Dot(t *state.Tree, root state.Handle, maxDepth int) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	if err := addNode(g, t, root); err != nil {
		return "", err
	}
	if err := walk(g, t, root, 0, maxDepth); err != nil {
		return "", err
	}
	return g.String(), nil
}

func walk(g *gographviz.Graph, t *state.Tree, h state.Handle, depth, maxDepth int) error {
	if depth >= maxDepth {
		return nil
	}
	for _, c := range t.Children(h) {
		if err := addNode(g, t, c); err != nil {
			return err
		}
		if err := addEdge(g, t, h, c); err != nil {
			return err
		}
		if err := walk(g, t, c, depth+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(h state.Handle) string {
	return fmt.Sprintf(`"n%d"`, h)
}

func addNode(g *gographviz.Graph, t *state.Tree, h state.Handle) error {
	attrs := map[string]string{
		"label": fmt.Sprintf(`"#%d\n%s"`, h, t.PendingMove(h)),
	}
	if t.IsTerminal(h) {
		attrs["style"] = `"filled"`
		attrs["fillcolor"] = `"lightcoral"`
	}
	return errors.WithStack(g.AddNode("G", nodeName(h), attrs))
}

func addEdge(g *gographviz.Graph, t *state.Tree, parent, child state.Handle) error {
	branch := t.Branch(child)
	label := `"choice"`
	if branch.Kind == state.Chance {
		label = fmt.Sprintf(`"p=%.3f"`, branch.Probability)
	}
	return errors.WithStack(g.AddEdge(nodeName(parent), nodeName(child), true, map[string]string{"label": label}))
}
