// SPDX-License-Identifier: MIT

// Command topoloss evaluates topological losses between point clouds and renders
// their persistence diagrams.
//
//	topoloss eval --source x.csv --target y.csv [--config topoloss.yaml]
//	topoloss diagram --points x.csv --out pd.png [--config topoloss.yaml]
//
// Point clouds are CSV files with one point per row; lines starting with '#' are
// comments.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
