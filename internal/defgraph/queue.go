package defgraph

import "container/heap"

// outDegreeQueue is a max-heap of vertices by live out-degree, ties broken
// by the smaller key. pos tracks each vertex's heap index (-1 once popped).
type outDegreeQueue struct {
	g     *Graph
	ids   []int
	pos   []int
	score []int
}

func newOutDegreeQueue(g *Graph, score []int, live []bool) *outDegreeQueue {
	q := &outDegreeQueue{
		g:     g,
		pos:   make([]int, len(g.keys)),
		score: score,
	}
	for id := range g.keys {
		q.pos[id] = -1
		if live[id] {
			q.pos[id] = len(q.ids)
			q.ids = append(q.ids, id)
		}
	}
	heap.Init(q)
	return q
}

func (q *outDegreeQueue) Len() int { return len(q.ids) }

func (q *outDegreeQueue) Less(i, j int) bool {
	a, b := q.ids[i], q.ids[j]
	if q.score[a] != q.score[b] {
		return q.score[a] > q.score[b]
	}
	return q.g.keys[a] < q.g.keys[b]
}

func (q *outDegreeQueue) Swap(i, j int) {
	q.ids[i], q.ids[j] = q.ids[j], q.ids[i]
	q.pos[q.ids[i]] = i
	q.pos[q.ids[j]] = j
}

func (q *outDegreeQueue) Push(x any) {
	id := x.(int)
	q.pos[id] = len(q.ids)
	q.ids = append(q.ids, id)
}

func (q *outDegreeQueue) Pop() any {
	n := len(q.ids)
	id := q.ids[n-1]
	q.ids = q.ids[:n-1]
	q.pos[id] = -1
	return id
}

// popMax removes and returns the vertex with the highest score.
func (q *outDegreeQueue) popMax() int {
	return heap.Pop(q).(int)
}

// remove drops id if it is still queued.
func (q *outDegreeQueue) remove(id int) {
	if i := q.pos[id]; i >= 0 {
		heap.Remove(q, i)
	}
}

// fix restores heap order after id's score changed.
func (q *outDegreeQueue) fix(id int) {
	if i := q.pos[id]; i >= 0 {
		heap.Fix(q, i)
	}
}
