// SPDX-License-Identifier: MIT

package cloud

import "errors"

// Sentinel errors. Messages are prefixed with "cloud:"; callers match with errors.Is.
var (
	// ErrNilPoints is returned when a nil matrix is passed where a point cloud is required.
	ErrNilPoints = errors.New("cloud: nil point matrix")

	// ErrEmpty indicates a cloud with no points or with points of dimension 0.
	ErrEmpty = errors.New("cloud: empty point cloud")

	// ErrDimensionMismatch indicates that supplied coordinates do not match the
	// configured point dimension or point count.
	ErrDimensionMismatch = errors.New("cloud: dimension mismatch")

	// ErrOutOfRange indicates a point or coordinate index outside the cloud.
	ErrOutOfRange = errors.New("cloud: index out of range")

	// ErrNaNInf signals a NaN or ±Inf coordinate.
	ErrNaNInf = errors.New("cloud: NaN or Inf coordinate")

	// ErrParse is returned by ReadCSV for malformed input.
	ErrParse = errors.New("cloud: malformed csv")
)
