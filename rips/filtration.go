// SPDX-License-Identifier: MIT

package rips

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// filtEdge is an edge of the filtration with its length.
type filtEdge struct {
	i, j   int
	length float64
}

// filtration is the 1-skeleton of a Vietoris–Rips complex up to a threshold.
//
//   - edges are sorted by (length, i, j); an edge's position is its filtration index.
//   - index[i*n+j] (and index[j*n+i]) holds that position, or -1 when {i, j} is
//     longer than the threshold.
type filtration struct {
	n     int
	edges []filtEdge
	index []int
}

// newFiltration collects every pair i<j with length ≤ threshold and sorts them.
//
// Steps:
//  1. Enumerate pairs in lexicographic (i, j) order, skipping pairs above threshold.
//  2. Stable sort by length: equal lengths keep lexicographic order.
//  3. Record each edge's position in the n×n lookup table.
//
// Complexity: O(n² log n). Memory: O(n²).
func newFiltration(dist *mat.SymDense, threshold float64) *filtration {
	n := dist.SymmetricDim()
	edges := make([]filtEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			l := dist.At(i, j)
			if l > threshold {
				continue
			}
			edges = append(edges, filtEdge{i: i, j: j, length: l})
		}
	}

	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].length < edges[b].length
	})

	index := make([]int, n*n)
	for k := range index {
		index[k] = -1
	}
	for pos, e := range edges {
		index[e.i*n+e.j] = pos
		index[e.j*n+e.i] = pos
	}

	return &filtration{n: n, edges: edges, index: index}
}

// edgeIndex returns the filtration index of {i, j} or -1.
func (f *filtration) edgeIndex(i, j int) int {
	return f.index[i*f.n+j]
}

// disjointSet is a union-find over point indices that also tracks the smallest
// vertex of each component (the elder, which survives a merge).
type disjointSet struct {
	parent []int
	rank   []int
	elder  []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		elder:  make([]int, n),
	}
	for v := 0; v < n; v++ {
		ds.parent[v] = v
		ds.elder[v] = v
	}

	return ds
}

// find returns the root of u with path halving.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the components rooted at ru and rv (both must be roots) and returns
// the elder vertex of the component that died.
func (ds *disjointSet) union(ru, rv int) int {
	eu, ev := ds.elder[ru], ds.elder[rv]
	dying, surviving := ev, eu
	if eu > ev {
		dying, surviving = eu, ev
	}

	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}
	ds.elder[ru] = surviving

	return dying
}

// zeroDim runs Kruskal over the filtration.
//
// Returns the finite merges (each with its death length), the essential elder
// vertices in ascending order, and a flag per filtration edge telling whether the
// edge merged two components (negative) or closed a loop (positive).
func (f *filtration) zeroDim(keepZero bool) (merges []Merge, deaths []float64, essential []int, negative []bool) {
	ds := newDisjointSet(f.n)
	negative = make([]bool, len(f.edges))

	for pos, e := range f.edges {
		ru, rv := ds.find(e.i), ds.find(e.j)
		if ru == rv {
			continue // positive edge: candidate loop creator
		}
		negative[pos] = true
		dying := ds.union(ru, rv)
		if e.length > 0 || keepZero {
			merges = append(merges, Merge{Vertex: dying, I: e.i, J: e.j})
			deaths = append(deaths, e.length)
		}
	}

	for v := 0; v < f.n; v++ {
		if ds.find(v) == v {
			essential = append(essential, ds.elder[v])
		}
	}
	sort.Ints(essential)

	return merges, deaths, essential, negative
}
