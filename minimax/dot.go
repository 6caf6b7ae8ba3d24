package minimax

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

const graphName = "tree"

// Dot renders the tree in Graphviz DOT format. Edges follow parent links and are
// labelled with the move that produced the child.
func (t *Tree) Dot() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	for i := range t.nodes {
		n := &t.nodes[i]
		shape := "box"
		if n.kind == Min {
			shape = "ellipse"
		}
		label := fmt.Sprintf("%v %v", n.kind, n.status)
		if n.status != Open {
			label = fmt.Sprintf("%v %g", n.kind, n.utility)
		}
		attrs := map[string]string{
			"label": strconv.Quote(label),
			"shape": shape,
		}
		if err := g.AddNode(graphName, dotName(n.id), attrs); err != nil {
			return "", errors.Wrapf(err, "node %d", n.id)
		}
		if !n.parent.isValid() {
			continue
		}
		edge := map[string]string{"label": strconv.Quote(n.move.String())}
		if err := g.AddEdge(dotName(n.parent), dotName(n.id), true, edge); err != nil {
			return "", errors.Wrapf(err, "edge %d -> %d", n.parent, n.id)
		}
	}
	return g.String(), nil
}

func dotName(n naughty) string { return "n" + strconv.Itoa(int(n)) }
