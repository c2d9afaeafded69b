// SPDX-License-Identifier: MIT

package autodiff

// Backward performs reverse-mode differentiation from root.
//
// Steps:
//  1. Collect every node reachable from root in topological order (parents first),
//     using an explicit stack so deep graphs cannot overflow the goroutine stack.
//  2. Reset Grad on every interior node; leaves keep accumulating.
//  3. Seed root.Grad = 1 and run each node's backward closure in reverse order.
//
// A nil root is a no-op.
// Complexity: O(V + E) over the reachable graph.
func Backward(root *Var) {
	if root == nil {
		return
	}
	order := topoOrder(root)

	for _, n := range order {
		if !n.IsLeaf() {
			n.Grad = 0
		}
	}
	root.Grad = 1

	for i := len(order) - 1; i >= 0; i-- {
		if order[i].backward != nil {
			order[i].backward()
		}
	}
}

// Params returns the distinct trainable leaves reachable from root.
// Order follows the topological walk and is deterministic for a fixed graph.
func Params(root *Var) []*Var {
	if root == nil {
		return nil
	}
	var out []*Var
	for _, n := range topoOrder(root) {
		if n.param {
			out = append(out, n)
		}
	}

	return out
}

// topoOrder returns nodes reachable from root, every node after all of its parents.
func topoOrder(root *Var) []*Var {
	type frame struct {
		node *Var
		next int // index of the next parent to visit
	}
	visited := map[*Var]bool{root: true}
	stack := []frame{{node: root}}
	var order []*Var

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.parents) {
			p := top.node.parents[top.next]
			top.next++
			if !visited[p] {
				visited[p] = true
				stack = append(stack, frame{node: p})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}
