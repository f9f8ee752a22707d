package search

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/awalterschulze/gographviz"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
)

// DefaultTraceLimit caps the number of nodes a Trace records.
const DefaultTraceLimit = 5000

// Trace records the nodes a search visits so the tree can be drawn with
// Graphviz. A Trace holds a single search; a nil *Trace records nothing.
// It is safe for concurrent use.
type Trace struct {
	// Limit is the most nodes recorded; zero means DefaultTraceLimit.
	Limit int

	mu        sync.Mutex
	nodes     []traceNode
	index     map[string]int
	truncated bool
}

type traceNode struct {
	id     string
	parent string
	move   chess.Move
	toMove chess.Colour
	score  int
	cutoff bool
	done   bool
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{index: map[string]int{}}
}

// enter records a node under parent and returns its id, or "" when the
// trace is disabled or full. Children of an unrecorded node are skipped.
func (t *Trace) enter(parent string, m chess.Move, toMove chess.Colour) string {
	if t == nil {
		return ""
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	limit := t.Limit
	if limit <= 0 {
		limit = DefaultTraceLimit
	}
	if len(t.nodes) > 0 && parent == "" {
		return ""
	}
	if len(t.nodes) >= limit {
		t.truncated = true
		return ""
	}
	if t.index == nil {
		t.index = map[string]int{}
	}

	id := "n" + strconv.Itoa(len(t.nodes))
	t.index[id] = len(t.nodes)
	t.nodes = append(t.nodes, traceNode{id: id, parent: parent, move: m, toMove: toMove})
	return id
}

// leave stores the score of a recorded node.
func (t *Trace) leave(id string, score int, cutoff bool) {
	if t == nil || id == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if i, ok := t.index[id]; ok {
		n := &t.nodes[i]
		n.score, n.cutoff, n.done = score, cutoff, true
	}
}

// Len returns the number of recorded nodes.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.nodes)
}

// Truncated reports whether nodes were dropped because of the limit.
func (t *Trace) Truncated() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.truncated
}

// DOT renders the recorded tree in the Graphviz DOT language. Each node is
// labelled with the move that led to it and its score. Nodes with White to
// move are boxes, and nodes where the search pruned the remaining moves are
// drawn dashed.
func (t *Trace) DOT() (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName("search"); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}
	if t == nil {
		return graph.String(), nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, n := range t.nodes {
		attrs := map[string]string{"label": strconv.Quote(n.label())}
		if n.toMove == chess.White {
			attrs["shape"] = "box"
		}
		if n.cutoff {
			attrs["style"] = "dashed"
		}
		if err := graph.AddNode("search", n.id, attrs); err != nil {
			return "", err
		}
		if n.parent != "" {
			if err := graph.AddEdge(n.parent, n.id, true, nil); err != nil {
				return "", err
			}
		}
	}
	return graph.String(), nil
}

func (n traceNode) label() string {
	move := "root"
	if n.move != chess.NoMove {
		move = n.move.String()
	}
	if !n.done {
		return move
	}
	return fmt.Sprintf("%s %+d", move, n.score)
}
