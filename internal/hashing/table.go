package hashing

import (
	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
)

type entry struct {
	key   uint64
	depth int
}

// Table caches move-tree counts by position key and remaining depth.
type Table struct {
	counts map[entry]uint64
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	hits        int
}

// NewTable creates a table. maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	return &Table{
		counts:      make(map[entry]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached count for the key at the given depth.
func (t *Table) Get(key uint64, depth int) (uint64, bool) {
	n, ok := t.counts[entry{key, depth}]
	if ok {
		t.hits++
	}
	return n, ok
}

// Put stores a count. It is silently dropped once the table is full.
func (t *Table) Put(key uint64, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.counts[entry{key, depth}] = nodes
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.counts)
}

// Hits returns how many lookups found an entry.
func (t *Table) Hits() int {
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.counts) >= t.maxCapacity
}

// Reset clears the table.
func (t *Table) Reset() {
	t.counts = make(map[entry]uint64)
	t.hits = 0
}

// Cache is the lookup interface used by Perft.
type Cache interface {
	Get(key uint64, depth int) (uint64, bool)
	Put(key uint64, depth int, nodes uint64)
}

// Perft counts leaf nodes like engine.Perft, reusing counts of positions
// reached by different move orders. A nil cache counts without caching.
func Perft(board *chess.Board, depth int, cache Cache) uint64 {
	if depth <= 0 {
		return 1
	}
	if cache == nil {
		return engine.Perft(board, board.Turn, depth)
	}

	key := Key(board)
	if n, ok := cache.Get(key, depth); ok {
		return n
	}

	var nodes uint64
	for _, m := range engine.AllLegalMoves(board, board.Turn) {
		child := board.Clone()
		engine.ApplyAndPass(child, m)
		nodes += Perft(child, depth-1, cache)
	}
	cache.Put(key, depth, nodes)
	return nodes
}
