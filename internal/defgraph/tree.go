package defgraph

import "github.com/heartmarshall/lexcore/internal/domain"

// Node is a graph vertex in exported JSON.
type Node struct {
	Name string `json:"name"`
}

// Link is a directed edge in exported JSON.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Export is a node-link document.
type Export struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Tree walks breadth-first from word to the words that define it. Core
// words are leaves. Links point from a word to each of its definers; ok is
// false when word is not in the graph.
func (g *Graph) Tree(word string, core domain.WordSet) (Export, bool) {
	start, found := g.index[word]
	if !found {
		return Export{}, false
	}

	tree := Export{Nodes: []Node{}, Links: []Link{}}
	visited := make([]bool, len(g.keys))
	queue := []int{start}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		key := g.keys[id]
		tree.Nodes = append(tree.Nodes, Node{Name: key})
		if core.Has(key) {
			continue
		}
		for _, definer := range g.in[id] {
			queue = append(queue, definer)
			tree.Links = append(tree.Links, Link{Source: key, Target: g.keys[definer]})
		}
	}
	return tree, true
}

// Export returns every vertex in ascending key order and every edge.
func (g *Graph) Export() Export {
	exp := Export{Nodes: make([]Node, 0, len(g.keys)), Links: make([]Link, 0, len(g.seen))}
	for _, k := range g.Keys() {
		exp.Nodes = append(exp.Nodes, Node{Name: k})
	}
	g.EachEdge(func(from, to string) {
		exp.Links = append(exp.Links, Link{Source: from, Target: to})
	})
	return exp
}
