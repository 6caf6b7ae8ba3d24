package minimax

import (
	"github.com/alphareversi/game"
)

const defaultTreeCapacity = 1024

// Tree is the node arena of a single search. Children are addressed by index so
// that nothing in the tree holds a pointer to anything else in it.
type Tree struct {
	nodes    []Node
	children [][]naughty
}

func newTree(capacity int) *Tree {
	return &Tree{
		nodes:    make([]Node, 0, capacity),
		children: make([][]naughty, 0, capacity),
	}
}

// alloc appends a node to the arena. Pointers to earlier nodes are invalidated.
func (t *Tree) alloc(board game.Board, kind Kind, move game.Move, parent naughty) naughty {
	id := naughty(len(t.nodes))
	depth := 0
	if parent.isValid() {
		depth = t.nodes[parent].depth + 1
	}
	t.nodes = append(t.nodes, Node{
		board:  board,
		kind:   kind,
		move:   move,
		depth:  depth,
		id:     id,
		parent: parent,
	})
	t.children = append(t.children, nil)
	return id
}

// addChild creates a child of parent with the opposite kind and appends it to parent's children.
func (t *Tree) addChild(parent naughty, board game.Board, move game.Move) naughty {
	child := t.alloc(board, t.nodes[parent].kind.Opposite(), move, parent)
	t.children[parent] = append(t.children[parent], child)
	return child
}

func (t *Tree) nodeFromNaughty(n naughty) *Node { return &t.nodes[int(n)] }

func (t *Tree) root() naughty {
	if len(t.nodes) == 0 {
		return nilNode
	}
	return 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns a copy of the root node.
func (t *Tree) Root() Node { return t.nodes[0] }

// RootChildren returns copies of the root's children in generation order.
func (t *Tree) RootChildren() []Node {
	if len(t.nodes) == 0 {
		return nil
	}
	kids := t.children[0]
	retVal := make([]Node, len(kids))
	for i, kid := range kids {
		retVal[i] = t.nodes[kid]
	}
	return retVal
}

// Path returns the moves from the root to the node with the given id, following parent links.
func (t *Tree) Path(id int) []game.Move {
	var path []game.Move
	for n := naughty(id); n.isValid() && int(n) < len(t.nodes); n = t.nodes[n].parent {
		if t.nodes[n].parent.isValid() {
			path = append(path, t.nodes[n].move)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// countChildren counts the descendants of n.
func (t *Tree) countChildren(n naughty) (retVal int) {
	for _, kid := range t.children[n] {
		retVal += t.countChildren(kid) + 1
	}
	return
}
