package astar

import "container/heap"

// Frontier is the open set: a min-heap of pending cells keyed by
// (f-score, insertion sequence) plus an O(1) membership index.
//
// Sequence numbers start at 0 and grow by one on every successful Push;
// they are never reused, so keys are totally ordered even when f-scores
// tie. The heap compares keys only, never cell payloads.
type Frontier struct {
	items frontierHeap
	slot  []*frontierItem // slot[idx] != nil ⇔ idx is pending
	next  uint64
}

// NewFrontier creates an empty frontier for cell indices in [0, cells).
func NewFrontier(cells int) *Frontier {
	return &Frontier{
		items: make(frontierHeap, 0, 64),
		slot:  make([]*frontierItem, cells),
	}
}

// Push inserts idx with priority f and the next sequence number.
// Returns false, consuming no sequence number, if idx is already pending.
// Complexity: O(log n).
func (q *Frontier) Push(idx, f int) bool {
	if q.slot[idx] != nil {
		return false
	}
	it := &frontierItem{idx: idx, f: f, seq: q.next}
	q.next++
	heap.Push(&q.items, it)
	q.slot[idx] = it
	return true
}

// Pop removes and returns the cell with the smallest (f, seq) key.
// ok is false when the frontier is empty.
// Complexity: O(log n).
func (q *Frontier) Pop() (idx int, ok bool) {
	if len(q.items) == 0 {
		return -1, false
	}
	it := heap.Pop(&q.items).(*frontierItem)
	q.slot[it.idx] = nil
	return it.idx, true
}

// Improve lowers the f-score of a pending cell and restores heap order.
// The cell keeps its sequence number. Returns false if idx is not
// pending or f is not lower than its current key.
// Complexity: O(log n).
func (q *Frontier) Improve(idx, f int) bool {
	it := q.slot[idx]
	if it == nil || f >= it.f {
		return false
	}
	it.f = f
	heap.Fix(&q.items, it.pos)
	return true
}

// Contains reports whether idx is pending. Complexity: O(1).
func (q *Frontier) Contains(idx int) bool {
	return q.slot[idx] != nil
}

// Key returns the live (f, seq) key of a pending cell.
func (q *Frontier) Key(idx int) (f int, seq uint64, ok bool) {
	it := q.slot[idx]
	if it == nil {
		return 0, 0, false
	}
	return it.f, it.seq, true
}

// Len returns the number of pending cells.
func (q *Frontier) Len() int { return len(q.items) }

// IsEmpty reports whether no cell is pending.
func (q *Frontier) IsEmpty() bool { return len(q.items) == 0 }

// Pushed returns how many sequence numbers have been handed out.
func (q *Frontier) Pushed() uint64 { return q.next }

// frontierItem is one pending cell and its key.
type frontierItem struct {
	idx int    // row-major cell index
	f   int    // priority
	seq uint64 // tie-break, insertion order
	pos int    // position in the heap slice
}

// frontierHeap implements heap.Interface ordered by (f, seq) ascending.
type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

func (h *frontierHeap) Push(x any) {
	it := x.(*frontierItem)
	it.pos = len(*h)
	*h = append(*h, it)
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	it.pos = -1
	return it
}
