// SPDX-License-Identifier: MIT

// Package diagramplot renders persistence diagrams with gonum/plot.
//
// Each homology dimension becomes one scatter series of (birth, death) points,
// drawn above a dashed diagonal birth = death. Points with an infinite death are
// pinned to a dotted "∞" line just above the largest finite value.
//
// Output formats are whatever gonum/plot supports for the file extension or format
// name: png, svg, pdf, eps, jpg, tif.
package diagramplot
