package threshold

import "container/heap"

// rankQueue is an indexed max-heap of case ids keyed by rank, ties to the
// smaller id. Ranks can be updated in place and any id removed.
type rankQueue struct {
	ids  []int // heap order
	pos  []int // pos[id] = index in ids, -1 once removed
	rank []int // rank[id]
}

func newRankQueue(rank []int) *rankQueue {
	q := &rankQueue{
		ids:  make([]int, len(rank)),
		pos:  make([]int, len(rank)),
		rank: rank,
	}
	for i := range rank {
		q.ids[i] = i
		q.pos[i] = i
	}
	heap.Init(q)
	return q
}

// Len implements heap.Interface.
func (q *rankQueue) Len() int { return len(q.ids) }

// Less implements heap.Interface: higher rank first, then smaller id.
func (q *rankQueue) Less(a, b int) bool {
	ra, rb := q.rank[q.ids[a]], q.rank[q.ids[b]]
	if ra != rb {
		return ra > rb
	}
	return q.ids[a] < q.ids[b]
}

// Swap implements heap.Interface.
func (q *rankQueue) Swap(a, b int) {
	q.ids[a], q.ids[b] = q.ids[b], q.ids[a]
	q.pos[q.ids[a]] = a
	q.pos[q.ids[b]] = b
}

// Push implements heap.Interface.
func (q *rankQueue) Push(x any) {
	id := x.(int)
	q.pos[id] = len(q.ids)
	q.ids = append(q.ids, id)
}

// Pop implements heap.Interface.
func (q *rankQueue) Pop() any {
	last := len(q.ids) - 1
	id := q.ids[last]
	q.ids = q.ids[:last]
	q.pos[id] = -1
	return id
}

// top returns the best-ranked id and its rank.
func (q *rankQueue) top() (id, rank int) {
	id = q.ids[0]
	return id, q.rank[id]
}

// set changes the rank of id and restores heap order.
func (q *rankQueue) set(id, rank int) {
	if q.rank[id] == rank {
		return
	}
	q.rank[id] = rank
	if p := q.pos[id]; p >= 0 {
		heap.Fix(q, p)
	}
}

// remove drops id from the queue; removing twice is a no-op.
func (q *rankQueue) remove(id int) {
	if p := q.pos[id]; p >= 0 {
		heap.Remove(q, p)
	}
}
