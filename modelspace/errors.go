// SPDX-License-Identifier: MIT

package modelspace

import "errors"

var (
	// ErrDimensionMismatch indicates source and target clouds live in different R^d.
	ErrDimensionMismatch = errors.New("modelspace: source and target dimensions differ")

	// ErrNilLoss indicates a nil loss factory, evaluator, or loss value.
	ErrNilLoss = errors.New("modelspace: nil loss")
)
