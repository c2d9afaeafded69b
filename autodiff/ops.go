// SPDX-License-Identifier: MIT

package autodiff

import "math"

// Add returns a + b.
func Add(a, b *Var) *Var {
	out := newNode(a.Value+b.Value, a, b)
	out.backward = func() {
		a.Grad += out.Grad
		b.Grad += out.Grad
	}

	return out
}

// Sub returns a - b.
func Sub(a, b *Var) *Var {
	out := newNode(a.Value-b.Value, a, b)
	out.backward = func() {
		a.Grad += out.Grad
		b.Grad -= out.Grad
	}

	return out
}

// Mul returns a * b.
func Mul(a, b *Var) *Var {
	av, bv := a.Value, b.Value
	out := newNode(av*bv, a, b)
	out.backward = func() {
		a.Grad += bv * out.Grad
		b.Grad += av * out.Grad
	}

	return out
}

// Neg returns -a.
func Neg(a *Var) *Var {
	out := newNode(-a.Value, a)
	out.backward = func() {
		a.Grad -= out.Grad
	}

	return out
}

// Scale returns s * a for a constant s.
func Scale(a *Var, s float64) *Var {
	out := newNode(s*a.Value, a)
	out.backward = func() {
		a.Grad += s * out.Grad
	}

	return out
}

// AddConst returns a + c for a constant c.
func AddConst(a *Var, c float64) *Var {
	out := newNode(a.Value+c, a)
	out.backward = func() {
		a.Grad += out.Grad
	}

	return out
}

// Sqrt returns √a. The derivative at a == 0 is taken as 0.
func Sqrt(a *Var) *Var {
	r := math.Sqrt(a.Value)
	out := newNode(r, a)
	out.backward = func() {
		if r == 0 {
			return
		}
		a.Grad += 0.5 / r * out.Grad
	}

	return out
}

// Abs returns |a|. The derivative at a == 0 is taken as 0.
func Abs(a *Var) *Var {
	av := a.Value
	out := newNode(math.Abs(av), a)
	out.backward = func() {
		switch {
		case av > 0:
			a.Grad += out.Grad
		case av < 0:
			a.Grad -= out.Grad
		}
	}

	return out
}

// Pow returns a^p for a constant exponent p.
// For a == 0 and p < 1 the derivative is taken as 0.
func Pow(a *Var, p float64) *Var {
	av := a.Value
	out := newNode(math.Pow(av, p), a)
	out.backward = func() {
		if av == 0 && p < 1 {
			return
		}
		a.Grad += p * math.Pow(av, p-1) * out.Grad
	}

	return out
}

// Sum returns the sum of vs. An empty input yields Const(0).
func Sum(vs ...*Var) *Var {
	if len(vs) == 0 {
		return Const(0)
	}
	total := 0.0
	for _, v := range vs {
		total += v.Value
	}
	parents := make([]*Var, len(vs))
	copy(parents, vs)
	out := newNode(total, parents...)
	out.backward = func() {
		for _, v := range parents {
			v.Grad += out.Grad
		}
	}

	return out
}
