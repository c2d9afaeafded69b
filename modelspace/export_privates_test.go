// SPDX-License-Identifier: MIT

package modelspace

// Test-Bridge (White-Box) for Metrics
//
// Purpose:
//   - Expose the unexported collectors of Metrics to modelspace_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.

import "github.com/prometheus/client_golang/prometheus"

// Evaluations_TestOnly returns the evaluation counter for one result label.
func Evaluations_TestOnly(mx *Metrics, result string) prometheus.Counter {
	return mx.evaluations.WithLabelValues(result)
}
