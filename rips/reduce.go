// SPDX-License-Identifier: MIT

package rips

import "sort"

// triangle is a 2-simplex with the filtration index of its longest edge (diam).
type triangle struct {
	i, j, k int
	diam    int
}

// loopPair links a creator edge to the diameter edge of the triangle that kills it.
type loopPair struct {
	creator   int // filtration index of the creator edge
	destroyer int // filtration index of the destroyer edge
}

// triangles enumerates every i<j<k whose three edges are in the filtration, ordered by
// (diameter index, i, j, k).
//
// Complexity: O(n³) enumeration + O(T log T) sort.
func (f *filtration) triangles() []triangle {
	var out []triangle
	for i := 0; i < f.n; i++ {
		for j := i + 1; j < f.n; j++ {
			ij := f.edgeIndex(i, j)
			if ij < 0 {
				continue
			}
			for k := j + 1; k < f.n; k++ {
				ik, jk := f.edgeIndex(i, k), f.edgeIndex(j, k)
				if ik < 0 || jk < 0 {
					continue
				}
				out = append(out, triangle{i: i, j: j, k: k, diam: max(ij, ik, jk)})
			}
		}
	}
	// Enumeration is already lexicographic; a stable sort by diameter keeps it as
	// the secondary key.
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].diam < out[b].diam
	})

	return out
}

// oneDim reduces the boundary matrix of the triangles over Z/2.
//
// Steps:
//  1. Column c holds the sorted filtration indices of triangle c's three edges.
//  2. While the column is non-empty and its lowest (largest) entry is already owned by
//     an earlier column, add that column (symmetric difference).
//  3. A non-empty reduced column with low entry e pairs creator edge e with the
//     triangle; the destroyer is the triangle's diameter edge.
//  4. Positive edges (not merges, see zeroDim) never claimed as a low are essential.
//
// Complexity: O(T·E) worst case for T triangles and E edges; far less in practice.
func (f *filtration) oneDim(negative []bool) (pairs []loopPair, essential []int) {
	tris := f.triangles()
	reduced := make([][]int, len(tris))
	owner := make(map[int]int, len(f.edges)) // low edge → reduced column index
	killed := make([]bool, len(f.edges))

	for c, t := range tris {
		col := []int{f.edgeIndex(t.i, t.j), f.edgeIndex(t.i, t.k), f.edgeIndex(t.j, t.k)}
		sort.Ints(col)

		for len(col) > 0 {
			low := col[len(col)-1]
			prev, taken := owner[low]
			if !taken {
				break
			}
			col = symmetricDifference(col, reduced[prev])
		}
		reduced[c] = col
		if len(col) == 0 {
			continue
		}

		low := col[len(col)-1]
		owner[low] = c
		killed[low] = true
		pairs = append(pairs, loopPair{creator: low, destroyer: t.diam})
	}

	for pos := range f.edges {
		if !negative[pos] && !killed[pos] {
			essential = append(essential, pos)
		}
	}

	return pairs, essential
}

// symmetricDifference merges two ascending index lists, dropping shared entries.
func symmetricDifference(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	x, y := 0, 0
	for x < len(a) && y < len(b) {
		switch {
		case a[x] < b[y]:
			out = append(out, a[x])
			x++
		case a[x] > b[y]:
			out = append(out, b[y])
			y++
		default:
			x++
			y++
		}
	}
	out = append(out, a[x:]...)
	out = append(out, b[y:]...)

	return out
}
