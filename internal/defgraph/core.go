package defgraph

import (
	"slices"
	"sort"
)

// FreeWords returns the vertices without incoming edges (words that define
// others but are never defined), in ascending order.
func (g *Graph) FreeWords() []string {
	var free []string
	for id, ins := range g.in {
		if len(ins) == 0 {
			free = append(free, g.keys[id])
		}
	}
	sort.Strings(free)
	return free
}

// Solve computes a definitional core greedily. Vertices with no live
// incoming edge are peeled off since they cannot lie on a cycle; when none
// remain, the vertex with the highest live out-degree (ties: smaller key)
// joins the core and is removed. The core is returned in removal order.
func (g *Graph) Solve() []string {
	n := len(g.keys)
	live := make([]bool, n)
	inDeg := make([]int, n)
	outDeg := make([]int, n)
	for id := range n {
		live[id] = true
		inDeg[id] = len(g.in[id])
		outDeg[id] = len(g.out[id])
	}

	q := newOutDegreeQueue(g, outDeg, live)

	var pending []int
	remove := func(id int) {
		live[id] = false
		q.remove(id)
		for _, t := range g.out[id] {
			if !live[t] {
				continue
			}
			inDeg[t]--
			if inDeg[t] == 0 {
				pending = append(pending, t)
			}
		}
		for _, f := range g.in[id] {
			if !live[f] {
				continue
			}
			outDeg[f]--
			q.fix(f)
		}
	}
	peel := func() {
		for len(pending) > 0 {
			id := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			if live[id] {
				remove(id)
			}
		}
	}

	for id := range n {
		if inDeg[id] == 0 {
			pending = append(pending, id)
		}
	}
	peel()

	var core []string
	for q.Len() > 0 {
		id := q.popMax()
		core = append(core, g.keys[id])
		remove(id)
		peel()
	}
	return core
}

// Verify reports whether the graph without the core and free words is
// acyclic.
func (g *Graph) Verify(core, free []string) bool {
	removed := g.mask(core, free)

	inDeg := make([]int, len(g.keys))
	remaining := 0
	var ready []int
	for id := range g.keys {
		if removed[id] {
			continue
		}
		remaining++
		for _, f := range g.in[id] {
			if !removed[f] {
				inDeg[id]++
			}
		}
		if inDeg[id] == 0 {
			ready = append(ready, id)
		}
	}

	processed := 0
	for len(ready) > 0 {
		id := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		processed++
		for _, t := range g.out[id] {
			if removed[t] {
				continue
			}
			inDeg[t]--
			if inDeg[t] == 0 {
				ready = append(ready, t)
			}
		}
	}
	return processed == remaining
}

// Cull walks the core in order and drops every word whose removal still
// verifies.
func (g *Graph) Cull(core, free []string) []string {
	result := slices.Clone(core)
	for i := 0; i < len(result); {
		candidate := slices.Delete(slices.Clone(result), i, i+1)
		if g.Verify(candidate, free) {
			result = candidate
			continue
		}
		i++
	}
	return result
}
