package hashing

import (
	"sync"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
	"github.com/KDaiyan/EECS22L-Chess/internal/worker"
)

// ThreadSafeTable wraps Table with mutex protection for concurrent access.
type ThreadSafeTable struct {
	table *Table
	mu    sync.RWMutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{
		table: NewTable(maxCapacity),
	}
}

// Get returns the cached count for the key at the given depth.
func (t *ThreadSafeTable) Get(key uint64, depth int) (uint64, bool) {
	// Get counts hits, so it needs the write lock.
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Get(key, depth)
}

// Put stores a count.
func (t *ThreadSafeTable) Put(key uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Put(key, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Hits returns how many lookups found an entry.
func (t *ThreadSafeTable) Hits() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}

// Divide returns the perft count below each legal root move, keyed by the
// move in coordinate notation. Root moves are counted by up to workers
// goroutines sharing cache, which may be nil.
func Divide(board *chess.Board, depth, workers int, cache Cache) (map[string]uint64, error) {
	moves := engine.AllLegalMoves(board, board.Turn)
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Board: board.Clone(), Move: m, Index: i}
	}

	results, err := worker.Run(items, workers, func(item worker.WorkItem) worker.ProcessResult {
		engine.ApplyAndPass(item.Board, item.Move)
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: Perft(item.Board, depth-1, cache),
		}
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]uint64, len(results))
	for _, r := range results {
		counts[r.Move.String()] = r.Nodes
	}
	return counts, nil
}
