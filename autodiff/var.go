// SPDX-License-Identifier: MIT

package autodiff

import "fmt"

// Var is a differentiable scalar.
// Value holds the forward result, Grad the accumulated ∂root/∂Var after Backward.
type Var struct {
	Value float64
	Grad  float64

	parents  []*Var // inputs this node was computed from
	backward func() // pushes out.Grad into parents; nil for leaves
	param    bool   // true for trainable leaves
}

// NewParam returns a trainable leaf.
func NewParam(v float64) *Var {
	return &Var{Value: v, param: true}
}

// Const returns a non-trainable leaf.
// Gradient still accumulates into it during Backward but nobody reads it.
func Const(v float64) *Var {
	return &Var{Value: v}
}

// IsParam reports whether v is a trainable leaf.
func (v *Var) IsParam() bool {
	return v.param
}

// IsLeaf reports whether v has no parents.
func (v *Var) IsLeaf() bool {
	return len(v.parents) == 0
}

// ZeroGrad resets the accumulated gradient.
func (v *Var) ZeroGrad() {
	v.Grad = 0
}

// Detach returns a constant copy of v with no graph history.
func (v *Var) Detach() *Var {
	return Const(v.Value)
}

// String implements fmt.Stringer.
func (v *Var) String() string {
	return fmt.Sprintf("Var(%g, grad=%g)", v.Value, v.Grad)
}

// newNode wires a computed node to its parents.
func newNode(value float64, parents ...*Var) *Var {
	return &Var{Value: value, parents: parents}
}
