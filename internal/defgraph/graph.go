// Package defgraph analyses a dictionary as a directed graph in which an edge
// runs from each definition word to the headword it helps define. A
// definitional core is a set of words whose removal, together with the
// undefined (free) words, leaves the graph acyclic.
package defgraph

import (
	"sort"
)

// Source feeds a Graph.
type Source interface {
	Names() []string
	Edges(fn func(from, to string))
}

// Graph is a directed graph over string keys without parallel edges or
// self-loops. Vertex ids are insertion indexes.
type Graph struct {
	index map[string]int
	keys  []string
	out   [][]int
	in    [][]int
	seen  map[[2]int]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		index: make(map[string]int),
		seen:  make(map[[2]int]struct{}),
	}
}

// FromSource builds the graph of src: every name is a vertex, every edge
// adds its endpoints.
func FromSource(src Source) *Graph {
	g := New()
	for _, name := range src.Names() {
		g.AddVertex(name)
	}
	src.Edges(func(from, to string) {
		g.AddEdge(from, to)
	})
	return g
}

// AddVertex adds k if absent and returns its id.
func (g *Graph) AddVertex(k string) int {
	if id, ok := g.index[k]; ok {
		return id
	}
	id := len(g.keys)
	g.index[k] = id
	g.keys = append(g.keys, k)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return id
}

// AddEdge adds from -> to, creating missing vertices. Duplicate edges and
// self-loops are ignored; the result reports whether an edge was added.
func (g *Graph) AddEdge(from, to string) bool {
	if from == to {
		g.AddVertex(from)
		return false
	}
	f, t := g.AddVertex(from), g.AddVertex(to)
	key := [2]int{f, t}
	if _, ok := g.seen[key]; ok {
		return false
	}
	g.seen[key] = struct{}{}
	g.out[f] = append(g.out[f], t)
	g.in[t] = append(g.in[t], f)
	return true
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.keys) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.seen) }

// Has reports whether k is a vertex.
func (g *Graph) Has(k string) bool {
	_, ok := g.index[k]
	return ok
}

// Keys returns the vertex keys in ascending order.
func (g *Graph) Keys() []string {
	keys := append([]string(nil), g.keys...)
	sort.Strings(keys)
	return keys
}

// Definers returns the keys with an edge into k, in insertion order.
func (g *Graph) Definers(k string) []string {
	id, ok := g.index[k]
	if !ok {
		return nil
	}
	return g.names(g.in[id])
}

// Defines returns the keys k has an edge to, in insertion order.
func (g *Graph) Defines(k string) []string {
	id, ok := g.index[k]
	if !ok {
		return nil
	}
	return g.names(g.out[id])
}

// EachEdge calls fn for every edge, grouped by source vertex in insertion
// order.
func (g *Graph) EachEdge(fn func(from, to string)) {
	for f, outs := range g.out {
		for _, t := range outs {
			fn(g.keys[f], g.keys[t])
		}
	}
}

func (g *Graph) names(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.keys[id]
	}
	return out
}

// mask marks the ids of keys; unknown keys are ignored.
func (g *Graph) mask(sets ...[]string) []bool {
	m := make([]bool, len(g.keys))
	for _, set := range sets {
		for _, k := range set {
			if id, ok := g.index[k]; ok {
				m[id] = true
			}
		}
	}
	return m
}
